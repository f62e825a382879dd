// Package completion provides the outbound adapters for the LLM backend.
// Two interchangeable sources implement domain.CompletionService: a bare
// HTTP chat endpoint and an Ollama server driven through langchaingo.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"bezbot/internal/domain"

	"go.uber.org/zap"
)

// HTTPCompletionService talks to a minimal chat endpoint: a single POST with
// the prompt and sampling options, answered with the completion text.
type HTTPCompletionService struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPCompletionService creates a new HTTPCompletionService. The injected
// http.Client carries the transport-level timeout; per-request deadlines come
// from the caller's context.
func NewHTTPCompletionService(baseURL, model string, client *http.Client, logger *zap.Logger) (domain.CompletionService, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("completion base URL cannot be empty")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPCompletionService{
		baseURL: baseURL,
		model:   model,
		client:  client,
		logger:  logger,
	}, nil
}

type completionRequest struct {
	Prompt      string  `json:"prompt"`
	Model       string  `json:"model,omitempty"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type completionResponse struct {
	Response string `json:"response"`
}

// Complete implements domain.CompletionService. Any transport failure,
// non-2xx status or malformed body is returned as an error; the generation
// orchestrator decides what to do with it.
func (s *HTTPCompletionService) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	body, err := json.Marshal(completionRequest{
		Prompt:      prompt,
		Model:       s.model,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		s.logger.Error("Completion endpoint returned error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return "", fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var decoded completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	return decoded.Response, nil
}

var _ domain.CompletionService = (*HTTPCompletionService)(nil)
