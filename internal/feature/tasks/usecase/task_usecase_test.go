package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a mock implementation of the TaskRepository interface.
type mockTaskRepository struct {
	FindByOwnerFunc func(ctx context.Context, ownerID string) ([]entity.Task, error)
	FindByIDFunc    func(ctx context.Context, id string) (*entity.Task, error)
	CreateFunc      func(ctx context.Context, task *entity.Task) error
	SaveFunc        func(ctx context.Context, task *entity.Task) error
	DeleteFunc      func(ctx context.Context, task *entity.Task) error
}

func (m *mockTaskRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Task, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) Save(ctx context.Context, task *entity.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, task *entity.Task) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, task)
	}
	return nil
}

const (
	ownerID = "11111111-1111-4111-8111-111111111111"
	otherID = "22222222-2222-4222-8222-222222222222"
	taskID  = "33333333-3333-4333-8333-333333333333"
)

// ownedTask returns a fresh task owned by ownerID for mutation tests.
func ownedTask() *entity.Task {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Task{
		ID:          taskID,
		Title:       "Original Title",
		Description: "Original description",
		Status:      entity.StatusPending,
		DueDate:     &due,
		OwnerID:     ownerID,
	}
}

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("defaults status to pending", func(t *testing.T) {
		var persisted *entity.Task
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				persisted = task
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		task, err := uc.Create(context.Background(), ownerID, CreateTaskInput{Title: "New Task"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Status != entity.StatusPending {
			t.Errorf("expected default status pending, got %q", task.Status)
		}
		if task.ID == "" {
			t.Error("task ID was not assigned")
		}
		if task.OwnerID != ownerID {
			t.Errorf("expected owner %s, got %s", ownerID, task.OwnerID)
		}
		if persisted != task {
			t.Error("created task was not persisted")
		}
	})

	t.Run("missing title", func(t *testing.T) {
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				t.Error("repository must not be called for an invalid task")
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		_, err := uc.Create(context.Background(), ownerID, CreateTaskInput{})

		if !errors.Is(err, ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got: %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})
		_, err := uc.Create(context.Background(), ownerID, CreateTaskInput{Title: "Task", Status: "archived"})

		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got: %v", err)
		}
	})

	t.Run("explicit completed status", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})
		task, err := uc.Create(context.Background(), ownerID, CreateTaskInput{Title: "Done already", Status: "completed"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Status != entity.StatusCompleted {
			t.Errorf("expected status completed, got %q", task.Status)
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("partial update changes only supplied fields", func(t *testing.T) {
		existing := ownedTask()
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
				return existing, nil
			},
		}

		uc := NewTaskUsecase(repo)
		task, err := uc.Update(context.Background(), ownerID, taskID, TaskPatch{
			Status: strPtr("completed"),
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Status != entity.StatusCompleted {
			t.Errorf("expected status completed, got %q", task.Status)
		}
		// Omitted fields keep their previous values
		if task.Title != "Original Title" {
			t.Errorf("title changed unexpectedly: %q", task.Title)
		}
		if task.Description != "Original description" {
			t.Errorf("description changed unexpectedly: %q", task.Description)
		}
		if task.DueDate == nil {
			t.Error("due date cleared unexpectedly")
		}
	})

	t.Run("empty description is a legal update", func(t *testing.T) {
		existing := ownedTask()
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
				return existing, nil
			},
		}

		uc := NewTaskUsecase(repo)
		task, err := uc.Update(context.Background(), ownerID, taskID, TaskPatch{
			Description: strPtr(""),
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Description != "" {
			t.Errorf("expected cleared description, got %q", task.Description)
		}
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		existing := ownedTask()
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
				return existing, nil
			},
			SaveFunc: func(ctx context.Context, task *entity.Task) error {
				t.Error("save must not be called for an invalid patch")
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		_, err := uc.Update(context.Background(), ownerID, taskID, TaskPatch{Title: strPtr("")})

		if !errors.Is(err, ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got: %v", err)
		}
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		existing := ownedTask()
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
				return existing, nil
			},
		}

		uc := NewTaskUsecase(repo)
		_, err := uc.Update(context.Background(), ownerID, taskID, TaskPatch{Status: strPtr("archived")})

		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got: %v", err)
		}
	})

	t.Run("task not found", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})
		_, err := uc.Update(context.Background(), ownerID, "missing-id", TaskPatch{Title: strPtr("x")})

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})

	t.Run("non-owner is rejected before any mutation", func(t *testing.T) {
		existing := ownedTask()
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
				return existing, nil
			},
			SaveFunc: func(ctx context.Context, task *entity.Task) error {
				t.Error("save must not be called for a non-owner")
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		_, err := uc.Update(context.Background(), otherID, taskID, TaskPatch{Title: strPtr("Hijacked")})

		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
		if existing.Title != "Original Title" {
			t.Errorf("task mutated despite ownership failure: %q", existing.Title)
		}
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	t.Run("owner deletes own task", func(t *testing.T) {
		existing := ownedTask()
		deleted := false
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
				return existing, nil
			},
			DeleteFunc: func(ctx context.Context, task *entity.Task) error {
				deleted = true
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		err := uc.Delete(context.Background(), ownerID, taskID)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Error("expected repository delete to be called")
		}
	})

	t.Run("task not found", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})
		err := uc.Delete(context.Background(), ownerID, "missing-id")

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		existing := ownedTask()
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
				return existing, nil
			},
			DeleteFunc: func(ctx context.Context, task *entity.Task) error {
				t.Error("delete must not be called for a non-owner")
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		err := uc.Delete(context.Background(), otherID, taskID)

		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
	})
}

func TestTaskUsecase_List(t *testing.T) {
	expected := []entity.Task{
		{ID: "b", Title: "Newer", OwnerID: ownerID},
		{ID: "a", Title: "Older", OwnerID: ownerID},
	}
	repo := &mockTaskRepository{
		FindByOwnerFunc: func(ctx context.Context, id string) ([]entity.Task, error) {
			if id != ownerID {
				t.Errorf("unexpected owner id: %s", id)
			}
			return expected, nil
		},
	}

	uc := NewTaskUsecase(repo)
	tasks, err := uc.List(context.Background(), ownerID)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "b" {
		t.Errorf("unexpected result: %+v", tasks)
	}
}
