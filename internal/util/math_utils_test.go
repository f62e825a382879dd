package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 3.5, Round1(3.45))
	assert.Equal(t, 3.3, Round1(10.0/3.0))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, -2.7, Round1(-2.66))
}

func TestSuccessRatePercent(t *testing.T) {
	assert.Equal(t, 0.0, SuccessRatePercent(0, 0))
	assert.Equal(t, 0.0, SuccessRatePercent(0, 5))
	assert.Equal(t, 100.0, SuccessRatePercent(5, 5))
	assert.Equal(t, 66.7, SuccessRatePercent(2, 3))
	assert.Equal(t, 75.0, SuccessRatePercent(3, 4))
}
