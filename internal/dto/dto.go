package dto

import "bezbot/internal/domain"

// QuestionRequest is the body of POST /get_answer.
type QuestionRequest struct {
	Question string `json:"question"`
}

// AnswerResponse is the reply to POST /get_answer.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// QuizRequest is the body of POST /get_quiz; ID selects the training module.
type QuizRequest struct {
	ID string `json:"id"`
}

// ChoiceItemResponse represents one generated multiple-choice item.
type ChoiceItemResponse struct {
	Title         string `json:"title"`
	VariantA      string `json:"variant_a"`
	VariantB      string `json:"variant_b"`
	VariantC      string `json:"variant_c"`
	VariantD      string `json:"variant_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// QuizResponse is the reply to POST /get_quiz.
type QuizResponse struct {
	Quiz []ChoiceItemResponse `json:"quiz"`
}

// ScenarioResponse is the reply to POST /get_scenario. The scenario is a
// one-element list, mirroring the quiz payload shape.
type ScenarioResponse struct {
	Scenario []ChoiceItemResponse `json:"scenario"`
}

// SpeechResponse is the reply to POST /speech_to_text.
type SpeechResponse struct {
	Text string `json:"text"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Experience int    `json:"experience"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Experience int    `json:"experience"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// TestAttemptRequest is the body of POST /tests.
type TestAttemptRequest struct {
	UserID   string `json:"user_id"`
	Module   string `json:"module"`
	Corrects int    `json:"corrects"`
}

// TestAttemptResponse represents a recorded test attempt.
type TestAttemptResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Module   string `json:"module"`
	Corrects int    `json:"corrects"`
}

// ScenarioAttemptRequest is the body of POST /scenarios.
type ScenarioAttemptRequest struct {
	UserID    string `json:"user_id"`
	IsCorrect bool   `json:"is_correct"`
}

// ScenarioAttemptResponse represents a recorded scenario attempt.
type ScenarioAttemptResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	IsCorrect bool   `json:"is_correct"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromTestAttempt maps a recorded test attempt to its response shape.
func FromTestAttempt(attempt *domain.TestAttempt) TestAttemptResponse {
	return TestAttemptResponse{
		ID:       attempt.ID,
		UserID:   attempt.UserID,
		Module:   attempt.Module,
		Corrects: attempt.Corrects,
	}
}

// FromScenarioAttempt maps a recorded scenario attempt to its response shape.
func FromScenarioAttempt(attempt *domain.ScenarioAttempt) ScenarioAttemptResponse {
	return ScenarioAttemptResponse{
		ID:        attempt.ID,
		UserID:    attempt.UserID,
		IsCorrect: attempt.IsCorrect,
	}
}

// FromChoiceItem maps a domain item to its response shape.
func FromChoiceItem(item domain.ChoiceItem) ChoiceItemResponse {
	return ChoiceItemResponse{
		Title:         item.Title,
		VariantA:      item.VariantA,
		VariantB:      item.VariantB,
		VariantC:      item.VariantC,
		VariantD:      item.VariantD,
		CorrectAnswer: string(item.CorrectAnswer),
		Explanation:   item.Explanation,
	}
}

// FromChoiceItems maps a domain item list to response shapes.
func FromChoiceItems(items []domain.ChoiceItem) []ChoiceItemResponse {
	out := make([]ChoiceItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromChoiceItem(item))
	}
	return out
}

// FromUser maps a domain user to its response shape.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Job:        user.Job,
		Experience: user.Experience,
		Email:      user.Email,
		Phone:      user.Phone,
	}
}
