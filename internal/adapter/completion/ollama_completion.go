package completion

import (
	"context"
	"fmt"
	"net/http"

	"bezbot/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaCompletionService implements domain.CompletionService against a
// local Ollama server through langchaingo.
type OllamaCompletionService struct {
	llm *ollama.LLM
}

// NewOllamaCompletionService creates a new OllamaCompletionService.
func NewOllamaCompletionService(serverURL, model string, client *http.Client) (domain.CompletionService, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	opts := []ollama.Option{
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	}
	if client != nil {
		opts = append(opts, ollama.WithHTTPClient(client))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &OllamaCompletionService{llm: llm}, nil
}

// Complete implements domain.CompletionService.
func (s *OllamaCompletionService) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	response, err := s.llm.Call(ctx, prompt,
		llms.WithMaxTokens(opts.MaxTokens),
		llms.WithTemperature(opts.Temperature),
		llms.WithTopP(opts.TopP),
	)
	if err != nil {
		return "", fmt.Errorf("ollama call failed: %w", err)
	}
	return response, nil
}

var _ domain.CompletionService = (*OllamaCompletionService)(nil)
