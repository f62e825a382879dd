package validation

import (
	"regexp"
	"strings"

	"bezbot/internal/domain"
	"bezbot/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestion validates the free-form question of a Q&A request.
func (v *Validator) ValidateQuestion(question string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewValidationError("question", "question is required"))
	} else if len(question) > 2000 {
		errors = append(errors, domain.NewValidationError("question", "question must be at most 2000 characters"))
	}

	return errors
}

// ValidateModuleID validates the training module identifier of a quiz request.
func (v *Validator) ValidateModuleID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewValidationError("id", "module id is required"))
		return errors
	}
	if !isValidModuleID(id) {
		errors = append(errors, domain.NewValidationError("id", "module id has an invalid format"))
	}

	return errors
}

// ValidateCreateUser validates the create-user payload.
func (v *Validator) ValidateCreateUser(req dto.CreateUserRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewValidationError("name", "name is required"))
	}
	if strings.TrimSpace(req.Job) == "" {
		errors = append(errors, domain.NewValidationError("job", "job is required"))
	}
	if req.Experience < 0 {
		errors = append(errors, domain.NewValidationError("experience", "experience must not be negative"))
	}

	return errors
}

// ValidateTestAttempt validates the record-test payload.
func (v *Validator) ValidateTestAttempt(req dto.TestAttemptRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.UserID) == "" {
		errors = append(errors, domain.NewValidationError("user_id", "user_id is required"))
	} else if !isValidULID(req.UserID) {
		errors = append(errors, domain.NewValidationError("user_id", "user_id has an invalid format"))
	}
	if strings.TrimSpace(req.Module) == "" {
		errors = append(errors, domain.NewValidationError("module", "module is required"))
	}
	if req.Corrects < 0 {
		errors = append(errors, domain.NewValidationError("corrects", "corrects must not be negative"))
	}

	return errors
}

// ValidateScenarioAttempt validates the record-scenario payload.
func (v *Validator) ValidateScenarioAttempt(req dto.ScenarioAttemptRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.UserID) == "" {
		errors = append(errors, domain.NewValidationError("user_id", "user_id is required"))
	} else if !isValidULID(req.UserID) {
		errors = append(errors, domain.NewValidationError("user_id", "user_id has an invalid format"))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidModuleID checks if the module identifier format is valid
func isValidModuleID(s string) bool {
	if len(s) == 0 || len(s) > 16 {
		return false
	}
	validModuleID := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	return validModuleID.MatchString(s)
}
