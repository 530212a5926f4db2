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

	"ai_tutor_backend/internal/feature/studyplan/domain/entity"
	"ai_tutor_backend/internal/feature/studyplan/transport/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockStudyPlanUsecase はテスト用のStudyPlanUsecaseモック実装です。
type mockStudyPlanUsecase struct {
	PlanFunc func(ctx context.Context, req entity.PlanRequest) (string, error)
}

func (m *mockStudyPlanUsecase) Plan(ctx context.Context, req entity.PlanRequest) (string, error) {
	return m.PlanFunc(ctx, req)
}

func newStudyPlanRouter(uc handler.StudyPlanUsecase) *gin.Engine {
	r := gin.New()
	r.POST("/api/learning-process", handler.NewStudyPlanHandler(uc).Plan)
	return r
}

func TestStudyPlanHandler_Plan(t *testing.T) {
	t.Parallel()

	validBody := `{"subject":"Physics","chapters":"Optics","deadline":"10 days","marks":"65","studyHours":"2h/day"}`

	tests := []struct {
		name       string
		body       string
		plan       func(ctx context.Context, req entity.PlanRequest) (string, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success returns plan",
			body: validBody,
			plan: func(ctx context.Context, req entity.PlanRequest) (string, error) {
				assert.Equal(t, entity.PlanRequest{
					Subject:    "Physics",
					Chapters:   "Optics",
					Deadline:   "10 days",
					Marks:      "65",
					StudyHours: "2h/day",
				}, req)
				return "Day 1-3: reflection and refraction...", nil
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"reply":"Day 1-3: reflection and refraction..."}`,
		},
		{
			name:       "missing subject",
			body:       `{"chapters":"Optics","deadline":"10 days","marks":"65","studyHours":"2h/day"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"reply":"invalid request"}`,
		},
		{
			name: "upstream failure",
			body: validBody,
			plan: func(ctx context.Context, req entity.PlanRequest) (string, error) {
				return "", errors.New("gemini: unavailable")
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"reply":"Error generating study plan"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newStudyPlanRouter(&mockStudyPlanUsecase{PlanFunc: tt.plan})

			req := httptest.NewRequest(http.MethodPost, "/api/learning-process", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
