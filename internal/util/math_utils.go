package util

import "math"

// Round1 rounds a value to one decimal place. Aggregate stats are reported
// with this precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SuccessRatePercent computes correct/total as a percentage rounded to one
// decimal place. A zero total yields 0 rather than NaN.
func SuccessRatePercent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(correct) / float64(total) * 100)
}
