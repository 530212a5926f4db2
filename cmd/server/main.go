package main

import (
	"context"
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"ai_tutor_backend/internal/app/config"
	"ai_tutor_backend/internal/app/di"
	"ai_tutor_backend/internal/app/router"
	authadapters "ai_tutor_backend/internal/feature/auth/adapters"
	authhandler "ai_tutor_backend/internal/feature/auth/transport/handler"
	authusecase "ai_tutor_backend/internal/feature/auth/usecase"
	careerhandler "ai_tutor_backend/internal/feature/career/transport/handler"
	careerusecase "ai_tutor_backend/internal/feature/career/usecase"
	chathandler "ai_tutor_backend/internal/feature/chat/transport/handler"
	chatusecase "ai_tutor_backend/internal/feature/chat/usecase"
	quizhandler "ai_tutor_backend/internal/feature/quiz/transport/handler"
	quizusecase "ai_tutor_backend/internal/feature/quiz/usecase"
	studyplanhandler "ai_tutor_backend/internal/feature/studyplan/transport/handler"
	studyplanusecase "ai_tutor_backend/internal/feature/studyplan/usecase"
	"ai_tutor_backend/internal/platform/ai/gemini"
	platformdb "ai_tutor_backend/internal/platform/db"
	platformjwt "ai_tutor_backend/internal/platform/jwt"
	platformredis "ai_tutor_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	// 設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := platformdb.Open(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewClient(cfg); err != nil {
		slog.Warn("redis unavailable, running without quiz cache", "error", err)
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// Gemini
	ai, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	// JWT
	tokens := platformjwt.NewGenerator(cfg.JWTSecret, cfg.TokenExpiration)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	chatUC := chatusecase.NewChatUsecase(ai)
	quizUC := quizusecase.NewQuizUsecase(di.NewQuizGenerator(rdb, cfg.QuizCacheTTL, ai), ai)
	planUC := studyplanusecase.NewStudyPlanUsecase(ai)
	careerUC := careerusecase.NewCareerUsecase(ai)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	chatH := chathandler.NewChatHandler(chatUC)
	quizH := quizhandler.NewQuizHandler(quizUC)
	planH := studyplanhandler.NewStudyPlanHandler(planUC)
	careerH := careerhandler.NewCareerHandler(careerUC)

	// ルータ生成
	r := router.NewRouter(tokens, authH, chatH, quizH, planH, careerH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
