// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"ai_tutor_backend/internal/feature/quiz/adapters"
	"ai_tutor_backend/internal/feature/quiz/usecase"
	"ai_tutor_backend/internal/platform/cache"
)

// NewQuizGenerator creates a QuizGenerator implementation.
// If Redis is available, the Gemini-backed generator is wrapped with a caching
// decorator so identical generation requests reuse a cached quiz for the TTL.
// Otherwise the generator talks to the model directly.
func NewQuizGenerator(rdb *redis.Client, ttl time.Duration, ai usecase.TextGenerator) usecase.QuizGenerator {
	inner := adapters.NewGeminiQuizGenerator(ai)
	if rdb != nil {
		return cache.NewCachingQuizGenerator(rdb, ttl, inner, "quiz")
	}
	return inner
}
