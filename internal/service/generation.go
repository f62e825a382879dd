package service

import (
	"context"
	"errors"
	"time"

	"bezbot/internal/config"
	"bezbot/internal/domain"
	"bezbot/internal/fallback"
	"bezbot/internal/logger"
	"bezbot/internal/parser"
	"bezbot/internal/schema"

	"go.uber.org/zap"
)

// generationService implements domain.GenerationService. It composes prompt
// compilation, the LLM call and the completion parser, and degrades to the
// fixed fallback fixtures on any failure. It holds no per-request state, so
// concurrent generation requests are independent.
type generationService struct {
	llm     domain.CompletionService
	opts    domain.CompletionOptions
	timeout time.Duration
}

// NewGenerationService creates a new generation service around the injected
// completion client.
func NewGenerationService(llm domain.CompletionService, cfg config.LLMConfig) domain.GenerationService {
	return &generationService{
		llm: llm,
		opts: domain.CompletionOptions{
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
		},
		timeout: cfg.Timeout,
	}
}

// GenerateQuiz generates a quiz from the given module context. It never
// fails: if generation or parsing breaks down, the fixed 5-item fallback
// quiz is returned instead.
func (s *generationService) GenerateQuiz(ctx context.Context, moduleContext string) []domain.ChoiceItem {
	spec := schema.Describe(domain.KindQuiz)
	prompt := buildQuizPrompt(moduleContext, spec.Instructions())

	items, err := s.generate(ctx, prompt, spec)
	if err != nil {
		logger.Get().Warn("Quiz generation failed, serving fallback quiz",
			zap.String("stage", failureStage(err)),
			zap.Error(err),
		)
		return fallback.Quiz()
	}
	return items
}

// GenerateScenario generates a single workplace scenario. A completion that
// parses to zero items counts as a failure: the scenario response must carry
// exactly one item, so the fixed fallback scenario is returned instead.
func (s *generationService) GenerateScenario(ctx context.Context) domain.ChoiceItem {
	spec := schema.Describe(domain.KindScenario)
	prompt := buildScenarioPrompt(spec.Instructions())

	items, err := s.generate(ctx, prompt, spec)
	if err != nil {
		logger.Get().Warn("Scenario generation failed, serving fallback scenario",
			zap.String("stage", failureStage(err)),
			zap.Error(err),
		)
		return fallback.Scenario()
	}
	if len(items) == 0 {
		logger.Get().Warn("Scenario generation returned no items, serving fallback scenario")
		return fallback.Scenario()
	}
	return items[0]
}

// generate runs one compile -> request -> parse pass. The LLM call is the
// only blocking step and runs under an explicit deadline; on timeout the
// call fails like any other transport error.
func (s *generationService) generate(ctx context.Context, prompt string, spec schema.FormatSpec) ([]domain.ChoiceItem, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completion, err := s.llm.Complete(cctx, prompt, s.opts)
	if err != nil {
		return nil, err
	}

	return parser.Parse(completion, spec)
}

// failureStage labels the upstream failure for logging. The caller-visible
// outcome is identical for every stage.
func failureStage(err error) string {
	var stageErr parser.StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage()
	}
	return "transport"
}
