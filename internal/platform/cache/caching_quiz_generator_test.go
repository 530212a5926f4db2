package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"ai_tutor_backend/internal/feature/quiz/domain/entity"
)

// mockQuizGenerator はテスト用のQuizGeneratorモック実装です。
type mockQuizGenerator struct {
	generateFn func(ctx context.Context, spec entity.Spec) (string, error)
}

// Generate はモックのgenerate関数を呼び出します。
func (m *mockQuizGenerator) Generate(ctx context.Context, spec entity.Spec) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, spec)
	}
	return "", nil
}

// testSpec はテストで共通に使う生成パラメータです。
var testSpec = entity.Spec{
	Topic:        "World History",
	Grade:        "10",
	Difficulty:   "medium",
	NumQuestions: 5,
}

// testKey はtestSpecに対応するキャッシュキーです（スペースは_に置換される）。
const testKey = "quiz:World_History:10:medium:5"

// TestNewCachingQuizGenerator_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingQuizGenerator_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       time.Hour,
			expectedNamespace: "quiz",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       time.Hour,
			expectedNamespace: "quiz",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewCachingQuizGenerator(nil, tt.ttl, &mockQuizGenerator{}, tt.namespace)

			if gen.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, gen.ttl)
			}
			if gen.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, gen.namespace)
			}
		})
	}
}

// TestCachingQuizGenerator_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部ジェネレーターを直接呼び出すことを検証します。
func TestCachingQuizGenerator_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockQuizGenerator{
		generateFn: func(ctx context.Context, spec entity.Spec) (string, error) {
			return "generated quiz", nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	gen := NewCachingQuizGenerator(nil, time.Hour, inner, "quiz")

	out, err := gen.Generate(context.Background(), testSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "generated quiz" {
		t.Errorf("expected generated quiz, got %q", out)
	}
}

// TestCachingQuizGenerator_CacheHit はキャッシュヒット時にRedisから返し、内部ジェネレーターを呼ばないことを検証します。
func TestCachingQuizGenerator_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet(testKey).SetVal("cached quiz")

	innerCalled := false
	inner := &mockQuizGenerator{
		generateFn: func(ctx context.Context, spec entity.Spec) (string, error) {
			innerCalled = true
			return "", nil
		},
	}

	gen := NewCachingQuizGenerator(rdb, time.Hour, inner, "quiz")
	out, err := gen.Generate(context.Background(), testSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner generator should not be called on cache hit")
	}
	if out != "cached quiz" {
		t.Errorf("expected cached quiz, got %q", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingQuizGenerator_CacheMiss はキャッシュミス時にモデルから生成し、キャッシュに保存することを検証します。
func TestCachingQuizGenerator_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	// Cache miss
	mock.ExpectGet(testKey).RedisNil()
	// Set cache after generating
	mock.ExpectSet(testKey, "fresh quiz", time.Hour).SetVal("OK")

	inner := &mockQuizGenerator{
		generateFn: func(ctx context.Context, spec entity.Spec) (string, error) {
			return "fresh quiz", nil
		},
	}

	gen := NewCachingQuizGenerator(rdb, time.Hour, inner, "quiz")
	out, err := gen.Generate(context.Background(), testSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "fresh quiz" {
		t.Errorf("expected fresh quiz, got %q", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingQuizGenerator_InnerError は内部ジェネレーターのエラーがそのまま伝播されることを検証します。
func TestCachingQuizGenerator_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("model unavailable")

	mock.ExpectGet(testKey).RedisNil()

	inner := &mockQuizGenerator{
		generateFn: func(ctx context.Context, spec entity.Spec) (string, error) {
			return "", expectedErr
		},
	}

	gen := NewCachingQuizGenerator(rdb, time.Hour, inner, "quiz")
	_, err := gen.Generate(context.Background(), testSpec)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingQuizGenerator_KeyEscaping はトピック内のスペースとコロンがキーから除去されることを検証します。
func TestCachingQuizGenerator_KeyEscaping(t *testing.T) {
	t.Parallel()

	gen := NewCachingQuizGenerator(nil, time.Hour, &mockQuizGenerator{}, "quiz")

	key := gen.cacheKey(entity.Spec{
		Topic:        "algebra: linear equations",
		Grade:        "9",
		Difficulty:   "easy",
		NumQuestions: 3,
	})

	expected := "quiz:algebra__linear_equations:9:easy:3"
	if key != expected {
		t.Errorf("expected key %q, got %q", expected, key)
	}
}
