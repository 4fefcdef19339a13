// Package router assembles the HTTP route table for the task tracker API.
package router

import (
	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	platformhandler "task_backend/internal/platform/http/handler"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/shared/ratelimiter"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS for the SPA origins, the public
// auth routes and the token-guarded task routes. Every /api/tasks route sits
// behind jwtmw.AuthRequired; no protected route is reachable without it.
func NewRouter(auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler,
	authLimiter *ratelimiter.RateLimiter, jwtSecret string, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	// SPAフロントエンド用CORS（クッキー/認証ヘッダを許可）
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/", platformhandler.Root)
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	// 認証エンドポイントはブルートフォース対策のレートリミット付き
	authRoutes := api.Group("/auth")
	authRoutes.Use(authLimiter.Middleware())
	{
		// 新規ユーザー登録
		authRoutes.POST("/signup", auth.Signup)
		// ログイン（トークン発行）
		authRoutes.POST("/login", auth.Login)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	protected := api.Group("/tasks")
	protected.Use(jwtmw.AuthRequired(jwtSecret))
	{
		protected.GET("", tasks.List)
		protected.POST("", tasks.Create)
		protected.PUT("/:id", tasks.Update)
		protected.DELETE("/:id", tasks.Delete)
	}

	return r
}
