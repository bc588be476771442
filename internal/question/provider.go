// Package question supplies generated questions to the game loop. The
// provider wraps an AI completion client with a TTL cache, retry with
// exponential backoff and a static fallback pool; no upstream failure ever
// reaches the caller.
package question

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

const (
	defaultRetryInitialInterval = time.Second
	defaultMaxAttempts          = 3
)

var errEmptyCompletion = errors.New("completion returned empty text")

// GenerationParams - sampling controls passed to the completion client.
type GenerationParams struct {
	MaxTokens   int
	Temperature float32
	TopP        float32
}

var (
	questionParams = GenerationParams{MaxTokens: 120, Temperature: 0.9, TopP: 1}
	judgeParams    = GenerationParams{MaxTokens: 5, Temperature: 0, TopP: 1}
)

// CompletionClient is the upstream AI boundary. Implementations wrap
// retryable failures in TransientError so the retry policy can tell the
// two classes apart.
type CompletionClient interface {
	Complete(ctx context.Context, messages []PromptMessage, params GenerationParams) (string, error)
}

// TransientError marks an upstream failure worth retrying (rate limit,
// server error, unavailable).
type TransientError struct {
	Err error
}

func (that *TransientError) Error() string {
	return that.Err.Error()
}

func (that *TransientError) Unwrap() error {
	return that.Err
}

func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// ProviderConfig - retry knobs; zero values fall back to the defaults.
type ProviderConfig struct {
	RetryInitialInterval time.Duration
	MaxAttempts          uint64
}

type Provider struct {
	logger   *slog.Logger
	client   CompletionClient
	cache    *Cache
	fallback *fallbackPool

	retryInitialInterval time.Duration
	maxAttempts          uint64

	mu               sync.Mutex
	lastQuestionText string
}

func NewProvider(logger *slog.Logger, client CompletionClient, cache *Cache, conf ProviderConfig) *Provider {
	if conf.RetryInitialInterval <= 0 {
		conf.RetryInitialInterval = defaultRetryInitialInterval
	}
	if conf.MaxAttempts == 0 {
		conf.MaxAttempts = defaultMaxAttempts
	}

	return &Provider{
		logger:               logger.With("component", "question_provider"),
		client:               client,
		cache:                cache,
		fallback:             newFallbackPool(),
		retryInitialInterval: conf.RetryInitialInterval,
		maxAttempts:          conf.MaxAttempts,
	}
}

// GenerateQuestion - returns a question for the given difficulty,
// preferring the cache, then the AI client under the retry policy, then
// the fallback pool. It never fails: every error path ends in a
// deterministic local question.
func (that *Provider) GenerateQuestion(ctx context.Context, difficulty entity.Difficulty, previousQuestion string) entity.Question {
	log := that.logger.With("method", "GenerateQuestion")

	fingerprint := Fingerprint(difficulty, previousQuestion)
	if cached, ok := that.cache.Get(fingerprint); ok {
		return cached
	}

	messages := BuildQuestionPrompt(difficulty, previousQuestion)

	var text string
	operation := func() error {
		completion, err := that.client.Complete(ctx, messages, questionParams)
		if err != nil {
			if !IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		completion = strings.TrimSpace(completion)
		if completion == "" {
			return backoff.Permanent(errEmptyCompletion)
		}

		text = completion
		return nil
	}

	if err := backoff.Retry(operation, that.newRetryPolicy(ctx)); err != nil {
		log.Warn("question generation failed, serving from fallback pool", "error", err)
		return that.fallback.Next(difficulty)
	}

	generated := entity.Question{
		Text:      text,
		Category:  string(difficulty),
		CreatedAt: time.Now(),
	}

	that.cache.Set(fingerprint, generated)
	that.setLastQuestionText(text)

	return generated
}

// CheckSimilarity - reports whether two answers mean the same thing.
// Case-insensitive equality short-circuits without an upstream call; on
// any upstream error the bidirectional substring heuristic decides.
func (that *Provider) CheckSimilarity(ctx context.Context, answerA, answerB string) bool {
	a := strings.TrimSpace(answerA)
	b := strings.TrimSpace(answerB)

	if strings.EqualFold(a, b) {
		return true
	}

	verdict, err := that.client.Complete(ctx, BuildJudgePrompt(a, b), judgeParams)
	if err != nil {
		that.logger.Warn("similarity judge unavailable, using substring heuristic", "error", err)
		return containsEitherWay(a, b)
	}

	return strings.Contains(strings.ToLower(verdict), "yes")
}

// LastQuestionText - the most recently generated question, used to ask the
// upstream for a different one next time.
func (that *Provider) LastQuestionText() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.lastQuestionText
}

func (that *Provider) setLastQuestionText(text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.lastQuestionText = text
}

func (that *Provider) newRetryPolicy(ctx context.Context) backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = that.retryInitialInterval

	return backoff.WithContext(backoff.WithMaxRetries(policy, that.maxAttempts-1), ctx)
}

func containsEitherWay(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}
