package domain

import "time"

// User represents a trainee registered with the assistant.
type User struct {
	ID         string
	Name       string
	Job        string
	Experience int
	Email      string
	Phone      string
	CreatedAt  time.Time
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if u.Job == "" {
		return NewValidationError("job", "job is required")
	}
	if u.Experience < 0 {
		return NewValidationError("experience", "experience must not be negative")
	}
	return nil
}

// TestAttempt is one completed quiz for a training module.
type TestAttempt struct {
	ID        string
	UserID    string
	Module    string
	Corrects  int
	CreatedAt time.Time
}

// Validate validates the test attempt
func (t *TestAttempt) Validate() error {
	if t.UserID == "" {
		return NewValidationError("user_id", "user_id is required")
	}
	if t.Module == "" {
		return NewValidationError("module", "module is required")
	}
	if t.Corrects < 0 {
		return NewValidationError("corrects", "corrects must not be negative")
	}
	return nil
}

// ScenarioAttempt is one answered workplace scenario.
type ScenarioAttempt struct {
	ID        string
	UserID    string
	IsCorrect bool
	CreatedAt time.Time
}

// Validate validates the scenario attempt
func (s *ScenarioAttempt) Validate() error {
	if s.UserID == "" {
		return NewValidationError("user_id", "user_id is required")
	}
	return nil
}

// ModuleStat aggregates test results for a single training module.
type ModuleStat struct {
	Module        string  `json:"module"`
	TestCount     int     `json:"test_count"`
	TotalCorrects int     `json:"total_corrects"`
	AvgCorrects   float64 `json:"avg_corrects"`
}

// UserStats is the per-user analytics view, recomputed per request.
type UserStats struct {
	UserID             string       `json:"user_id"`
	Name               string       `json:"name"`
	Job                string       `json:"job"`
	Experience         int          `json:"experience"`
	TotalTests         int          `json:"total_tests"`
	TotalCorrects      int          `json:"total_corrects"`
	AvgCorrects        float64      `json:"avg_corrects"`
	TotalScenarios     int          `json:"total_scenarios"`
	SuccessRatePercent float64      `json:"success_rate_percent"`
	Modules            []ModuleStat `json:"modules"`
}

// UserPerformance is one leaderboard row, ordered by scenario success rate.
type UserPerformance struct {
	UserID             string  `json:"user_id"`
	Name               string  `json:"name"`
	Job                string  `json:"job"`
	ScenariosTotal     int     `json:"scenarios_total"`
	ScenariosCorrect   int     `json:"scenarios_correct"`
	SuccessRatePercent float64 `json:"success_rate_percent"`
}

// GlobalStats is the cross-user analytics view.
type GlobalStats struct {
	UsersTotal         int               `json:"users_total"`
	TestsTotal         int               `json:"tests_total"`
	ScenariosTotal     int               `json:"scenarios_total"`
	ScenariosCorrect   int               `json:"scenarios_correct"`
	SuccessRatePercent float64           `json:"success_rate_percent"`
	Modules            []ModuleStat      `json:"modules"`
	HardestModules     []ModuleStat      `json:"hardest_modules"`
	UsersPerformance   []UserPerformance `json:"users_performance"`
}
