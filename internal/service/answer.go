package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"bezbot/internal/cache"
	"bezbot/internal/config"
	"bezbot/internal/domain"
	"bezbot/internal/logger"

	"go.uber.org/zap"
)

// answerService implements domain.AnswerService: knowledge-base context plus
// LLM completion, with a read-through cache keyed by the normalized question.
// Cache failures degrade to a miss; they never fail the request.
type answerService struct {
	llm             domain.CompletionService
	contextProvider domain.ContextProvider
	cache           domain.Cache
	opts            domain.CompletionOptions
	timeout         time.Duration
	ttl             time.Duration
}

// NewAnswerService creates a new answer service. cacheClient may be nil, in
// which case every question goes to the LLM.
func NewAnswerService(llm domain.CompletionService, contextProvider domain.ContextProvider, cacheClient domain.Cache, cfg *config.Config) domain.AnswerService {
	return &answerService{
		llm:             llm,
		contextProvider: contextProvider,
		cache:           cacheClient,
		opts: domain.CompletionOptions{
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
			TopP:        cfg.LLM.TopP,
		},
		timeout: cfg.LLM.Timeout,
		ttl:     cfg.Cache.AnswerTTL,
	}
}

// AnswerQuestion answers a free-form question over the knowledge base.
// Unlike the generation pipeline there is no fallback here: failures
// propagate as typed errors and surface at the API boundary.
func (s *answerService) AnswerQuestion(ctx context.Context, question string) (string, error) {
	key := answerCacheKey(question)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Answer cache lookup failed", zap.Error(err))
		}
	}

	kbContext, err := s.contextProvider.GetContext(ctx)
	if err != nil {
		return "", err
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.llm.Complete(cctx, buildChatPrompt(kbContext, question), s.opts)
	if err != nil {
		return "", domain.NewLLMServiceError(err)
	}
	answer = strings.TrimSpace(answer)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, answer, s.ttl); err != nil {
			logger.Get().Warn("Failed to store answer in cache", zap.Error(err))
		}
	}
	return answer, nil
}

// answerCacheKey hashes the normalized question so that key length stays
// bounded and trivial reformulations of the same question collide.
func answerCacheKey(question string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(question), " "))
	sum := sha256.Sum256([]byte(normalized))
	return cache.GenerateCacheKey("answer", "question", hex.EncodeToString(sum[:]))
}
