// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"ai_tutor_backend/internal/feature/quiz/domain/entity"
	"ai_tutor_backend/internal/feature/quiz/usecase"
)

// CachingQuizGenerator decorates a QuizGenerator with Redis caching.
// Identical generation parameters hit the same upstream-expensive prompt, so a
// generated quiz is reused for the configured TTL. Caching is transparent and
// best effort: a missing or failing Redis never blocks generation.
type CachingQuizGenerator struct {
	inner     usecase.QuizGenerator
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingQuizGeneratorがQuizGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.QuizGenerator = (*CachingQuizGenerator)(nil)

// NewCachingQuizGenerator decorates a QuizGenerator with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "quiz".
func NewCachingQuizGenerator(rdb *redis.Client, ttl time.Duration, inner usecase.QuizGenerator, namespace string) *CachingQuizGenerator {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "quiz"
	}
	return &CachingQuizGenerator{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Generate retrieves a quiz, checking cache first then falling back to the model.
func (c *CachingQuizGenerator) Generate(ctx context.Context, spec entity.Spec) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Generate(ctx, spec)
	}

	key := c.cacheKey(spec)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && s != "" {
		return s, nil
	}

	// 2) Fallback to the model
	out, err := c.inner.Generate(ctx, spec)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, out, c.ttl).Err()

	return out, nil
}

// cacheKey generates a cache key for a specific generation request.
func (c *CachingQuizGenerator) cacheKey(spec entity.Spec) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d",
		c.namespace,
		safe(spec.Topic),
		safe(spec.Grade),
		safe(spec.Difficulty),
		spec.NumQuestions,
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
