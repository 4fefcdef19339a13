// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/adapters"
	"task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/cache"
)

// NewTaskRepository creates the TaskRepository used by the task usecase.
// When Redis is available the PostgreSQL repository is wrapped in the caching
// decorator; otherwise the store is used directly and the service degrades to
// uncached reads.
func NewTaskRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.TaskRepository {
	repo := adapters.NewTaskRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingTaskRepository(rdb, ttl, repo, "tasks")
}
