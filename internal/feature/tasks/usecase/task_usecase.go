package usecase

import (
	"context"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"

	"github.com/google/uuid"
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// 本番ではRedisキャッシュ付きデコレータでラップされます。
type TaskRepository interface {
	// FindByOwner は指定オーナーの全タスクを作成日時の降順で返します。
	FindByOwner(ctx context.Context, ownerID string) ([]entity.Task, error)

	// FindByID はIDでタスクを取得します。
	// タスクが存在しない場合、ErrTaskNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Task, error)

	// Create は新しいタスクをストレージに永続化します。
	Create(ctx context.Context, task *entity.Task) error

	// Save は既存タスクの変更を永続化します。
	Save(ctx context.Context, task *entity.Task) error

	// Delete はタスクをストレージから削除します。
	Delete(ctx context.Context, task *entity.Task) error
}

// CreateTaskInput はタスク作成時の入力フィールドです。
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	DueDate     *time.Time
}

// TaskPatch は部分更新の入力フィールドです。
// nilのフィールドは「変更しない」を意味し、存在するフィールドは
// 空値であっても適用されます（truthyチェックではなく存在チェック）。
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
}

// taskUsecase はタスク管理のビジネスロジックを実装します。
// すべての読み書きでオーナーの排他性を強制します。
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase はtaskUsecaseの新しいインスタンスを生成します。
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// List は指定オーナーの全タスクを作成日時の降順で返します。
// キャッシュのヒット/ミスはリポジトリのデコレータが扱うため、ここでは内容の鮮度を意識しません。
func (u *taskUsecase) List(ctx context.Context, ownerID string) ([]entity.Task, error) {
	return u.tasks.FindByOwner(ctx, ownerID)
}

// Create は新しいタスクをオーナーに紐付けて作成します。
// タイトルは必須、ステータスは未指定ならpendingがデフォルトになります。
func (u *taskUsecase) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*entity.Task, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	status := entity.StatusPending
	if in.Status != "" {
		status = entity.Status(in.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	task := &entity.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		DueDate:     in.DueDate,
		OwnerID:     ownerID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update は指定フィールドのみを既存タスクにマージして保存します。
// 所有者チェックは一切の変更適用より前に、安定したID値の比較で行います。
func (u *taskUsecase) Update(ctx context.Context, ownerID, taskID string, patch TaskPatch) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if patch.Title != nil {
		// タイトルは必須フィールドのため、空文字への更新は拒否する
		if *patch.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		// 空文字も正当な値（説明のクリア）として適用する
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		status := entity.Status(*patch.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete は所有者本人のタスクのみを削除します。
// Updateと同一の存在・所有者チェックを行います。
func (u *taskUsecase) Delete(ctx context.Context, ownerID, taskID string) error {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.OwnerID != ownerID {
		return ErrNotOwner
	}
	return u.tasks.Delete(ctx, task)
}
