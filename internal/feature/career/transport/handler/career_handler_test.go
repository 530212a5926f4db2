package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ai_tutor_backend/internal/feature/career/transport/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockCareerUsecase はテスト用のCareerUsecaseモック実装です。
type mockCareerUsecase struct {
	AdviseFunc func(ctx context.Context, query string) (string, error)
}

func (m *mockCareerUsecase) Advise(ctx context.Context, query string) (string, error) {
	return m.AdviseFunc(ctx, query)
}

func newCareerRouter(uc handler.CareerUsecase) *gin.Engine {
	r := gin.New()
	r.POST("/api/career-recommendation", handler.NewCareerHandler(uc).Advise)
	return r
}

func TestCareerHandler_Advise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		advise     func(ctx context.Context, query string) (string, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success returns advice",
			body: `{"query":"Which careers suit a physics major?"}`,
			advise: func(ctx context.Context, query string) (string, error) {
				assert.Equal(t, "Which careers suit a physics major?", query)
				return "Research, engineering, data science.", nil
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"reply":"Research, engineering, data science."}`,
		},
		{
			name:       "missing query",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"reply":"invalid request"}`,
		},
		{
			name: "upstream failure",
			body: `{"query":"anything"}`,
			advise: func(ctx context.Context, query string) (string, error) {
				return "", errors.New("gemini: unavailable")
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"reply":"Error fetching career advice"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newCareerRouter(&mockCareerUsecase{AdviseFunc: tt.advise})

			req := httptest.NewRequest(http.MethodPost, "/api/career-recommendation", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
