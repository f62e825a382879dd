package domain

import "context"

// CompletionOptions tune a single LLM completion request.
type CompletionOptions struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// CompletionService is the outbound port to the LLM backend. Implementations
// must honor ctx cancellation; any transport or non-2xx failure is returned
// as an error for the caller to handle.
type CompletionService interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// GenerationService produces schema-valid quiz and scenario content.
// Both operations always return valid content: any upstream failure is
// logged and replaced with the fixed fallback fixtures.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, moduleContext string) []ChoiceItem
	GenerateScenario(ctx context.Context) ChoiceItem
}

// ContextProvider supplies knowledge-base text for prompt construction.
type ContextProvider interface {
	// GetContext returns the general knowledge-base context for Q&A.
	GetContext(ctx context.Context) (string, error)

	// GetContextByModule returns the summary fixture for a training module id.
	// Returns a NOT_FOUND domain error when no fixture matches the id.
	GetContextByModule(ctx context.Context, id string) (string, error)
}

// Transcriber converts an uploaded audio blob into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// AnswerService answers free-form questions over the knowledge base.
type AnswerService interface {
	AnswerQuestion(ctx context.Context, question string) (string, error)
}

// UserService covers trainee records, attempt recording and analytics.
type UserService interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)

	RecordTestAttempt(ctx context.Context, attempt *TestAttempt) (*TestAttempt, error)
	GetTestAttempt(ctx context.Context, id string) (*TestAttempt, error)
	RecordScenarioAttempt(ctx context.Context, attempt *ScenarioAttempt) (*ScenarioAttempt, error)
	GetScenarioAttempt(ctx context.Context, id string) (*ScenarioAttempt, error)

	GetUserStats(ctx context.Context, userID string) (*UserStats, error)
	GetGlobalStats(ctx context.Context) (*GlobalStats, error)
}
