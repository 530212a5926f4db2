// Package router はアプリケーションのHTTPルーティングを組み立てます。
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "ai_tutor_backend/internal/feature/auth/transport/handler"
	careerhandler "ai_tutor_backend/internal/feature/career/transport/handler"
	chathandler "ai_tutor_backend/internal/feature/chat/transport/handler"
	quizhandler "ai_tutor_backend/internal/feature/quiz/transport/handler"
	studyplanhandler "ai_tutor_backend/internal/feature/studyplan/transport/handler"
	platformhandler "ai_tutor_backend/internal/platform/http/handler"
	jwtmw "ai_tutor_backend/internal/platform/jwt"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを返します。
func NewRouter(
	tokens *jwtmw.Generator,
	auth *authhandler.AuthHandler,
	chat *chathandler.ChatHandler,
	quiz *quizhandler.QuizHandler,
	plan *studyplanhandler.StudyPlanHandler,
	career *careerhandler.CareerHandler,
) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/signin", auth.Signin)

	// 認証必須のルート
	// リクエストヘッダーに Bearer JWT が必要になる
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired(tokens))
	{
		api.POST("/chatbot", chat.Chat)
		api.POST("/generate-quiz", quiz.Generate)
		api.POST("/submit-quiz", quiz.Submit)
		api.POST("/learning-process", plan.Plan)
		api.POST("/career-recommendation", career.Advise)
	}

	return r
}
