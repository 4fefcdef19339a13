// Package ratelimiter provides a fixed-window request limiter for the auth endpoints.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiterは、ログイン試行などの操作の頻度をクライアントIP単位で制限します。
type RateLimiter struct {
	limit   int           // windowあたりの上限
	window  time.Duration // どの単位でリセットするか
	mu      sync.Mutex
	counts  map[string]int
	resetAt time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		counts:  make(map[string]int),
		resetAt: time.Now().Add(window),
	}
}

// Allowは指定キーのリクエストが上限内かを判定し、カウントを進めます。
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// window を過ぎたらカウントリセット
	now := time.Now()
	if now.After(rl.resetAt) {
		rl.counts = make(map[string]int)
		rl.resetAt = now.Add(rl.window)
	}

	rl.counts[key]++
	return rl.counts[key] <= rl.limit
}

// Middleware は上限超過のリクエストを429で拒否するGinミドルウェアを返します。
// ブルートフォース対策として認証エンドポイントに適用します。
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
