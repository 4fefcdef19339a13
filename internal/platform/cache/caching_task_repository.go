// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching of
// per-owner task lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
//
// The cache is a pure optimization: every cache failure is logged and
// swallowed, and the call falls back to the underlying repository.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingTaskRepository がTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "tasks".
// A nil redis client disables caching entirely.
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByOwner retrieves an owner's task list, checking the cache first and
// falling back to the underlying repository on a miss. The cached snapshot is
// returned verbatim; hit and miss never differ in content, only in freshness.
func (c *CachingTaskRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Task, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByOwner(ctx, ownerID)
	}

	key := c.cacheKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("task cache set failed", "key", key, "error", err)
		}
	}

	return out, nil
}

// FindByID is never cached; single-task reads go straight through.
func (c *CachingTaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	return c.inner.FindByID(ctx, id)
}

// Create persists a new task and invalidates the owner's cached list.
func (c *CachingTaskRepository) Create(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Create(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.OwnerID)
	return nil
}

// Save persists task changes and invalidates the owner's cached list.
func (c *CachingTaskRepository) Save(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Save(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.OwnerID)
	return nil
}

// Delete removes a task and invalidates the owner's cached list.
func (c *CachingTaskRepository) Delete(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Delete(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.OwnerID)
	return nil
}

// invalidate deletes the owner's cache entry after a committed store write so
// the next read repopulates from the store. Failures are logged, never surfaced.
func (c *CachingTaskRepository) invalidate(ctx context.Context, ownerID string) {
	if c.rdb == nil {
		return
	}
	key := c.cacheKey(ownerID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("task cache invalidation failed", "key", key, "error", err)
	}
}

// cacheKey generates the cache key for an owner's task list.
func (c *CachingTaskRepository) cacheKey(ownerID string) string {
	return fmt.Sprintf("%s:%s", c.namespace, ownerID)
}
