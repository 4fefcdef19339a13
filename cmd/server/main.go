package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/di"
	"task_backend/internal/app/router"
	"task_backend/internal/config"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	infradb "task_backend/internal/platform/db"
	jwtmw "task_backend/internal/platform/jwt"
	infraredis "task_backend/internal/platform/redis"
	"task_backend/internal/shared/ratelimiter"
)

func main() {
	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	// Redisキャッシュでラップ
	taskRepo := di.NewTaskRepository(db, rdb, cfg.CacheTTL)

	// Token generator
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenExpiry)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// 認証エンドポイント用レートリミッタ
	authLimiter := ratelimiter.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)

	// ルータ生成
	r := router.NewRouter(authH, taskH, authLimiter, cfg.JWTSecret, cfg.CORSOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
