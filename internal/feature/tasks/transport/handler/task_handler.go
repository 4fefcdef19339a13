// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"

	"task_backend/internal/api"
	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
	jwtmw "task_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TaskUsecase interface {
	// List は指定オーナーの全タスクを作成日時の降順で返します。
	List(ctx context.Context, ownerID string) ([]entity.Task, error)
	// Create は新しいタスクをオーナーに紐付けて作成します。
	Create(ctx context.Context, ownerID string, in usecase.CreateTaskInput) (*entity.Task, error)
	// Update は指定フィールドのみを既存タスクにマージして保存します。
	Update(ctx context.Context, ownerID, taskID string, patch usecase.TaskPatch) (*entity.Task, error)
	// Delete は所有者本人のタスクのみを削除します。
	Delete(ctx context.Context, ownerID, taskID string) error
}

// TaskHandler はタスク操作のHTTPリクエストを処理します。
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler はTaskHandlerの新しいインスタンスを生成します。
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List は認証済みユーザーのタスク一覧を返すAPIです。
// キャッシュの有無はレスポンス内容に影響しません。
func (h *TaskHandler) List(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)
	tasks, err := h.tasks.List(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("task list failed", "error", err, "owner_id", ownerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toAPITask(&t))
	}
	c.JSON(http.StatusOK, out)
}

// Create は新しいタスクを作成するAPIです。
// - タイトル必須、ステータスはpending/completedのみ許可
// - 成功時は作成されたタスクを201で返却
func (h *TaskHandler) Create(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)

	var req api.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task create validation failed", "error", err, "owner_id", ownerID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), ownerID, usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     fromAPIDate(req.DueDate),
	})
	if err != nil {
		h.writeError(c, err, ownerID)
		return
	}
	c.JSON(http.StatusCreated, toAPITask(task))
}

// Update はタスクの部分更新APIです。
// リクエストに含まれるフィールドのみを適用します（存在チェック、truthyチェックではない）。
func (h *TaskHandler) Update(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)
	taskID := c.Param("id")

	var req api.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task update validation failed", "error", err, "owner_id", ownerID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), ownerID, taskID, usecase.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     fromAPIDate(req.DueDate),
	})
	if err != nil {
		h.writeError(c, err, ownerID)
		return
	}
	c.JSON(http.StatusOK, toAPITask(task))
}

// Delete はタスクを削除するAPIです。成功時は確認メッセージを返します。
func (h *TaskHandler) Delete(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)
	taskID := c.Param("id")

	if err := h.tasks.Delete(c.Request.Context(), ownerID, taskID); err != nil {
		h.writeError(c, err, ownerID)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "task removed"})
}

// writeError はユースケースのエラーをHTTPステータスに変換します。
// 所有者違反は404ではなく401を返します（このシステムの規約では403を使いません）。
func (h *TaskHandler) writeError(c *gin.Context, err error, ownerID string) {
	switch {
	case errors.Is(err, usecase.ErrTitleRequired), errors.Is(err, usecase.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "task not found"})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
	default:
		slog.Error("task operation failed", "error", err, "owner_id", ownerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
	}
}

// toAPITask はエンティティをワイヤ表現に変換します。
func toAPITask(t *entity.Task) api.Task {
	out := api.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		out.DueDate = &types.Date{Time: *t.DueDate}
	}
	return out
}

// fromAPIDate はワイヤ表現の日付をエンティティの時刻に変換します。
func fromAPIDate(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
