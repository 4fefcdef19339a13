// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when no task exists with the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNotOwner is returned when a task exists but belongs to a different user.
	ErrNotOwner = errors.New("not the task owner")

	// ErrTitleRequired is returned when a create or update would leave the task without a title.
	ErrTitleRequired = errors.New("title is required")

	// ErrInvalidStatus is returned when a status value is neither "pending" nor "completed".
	ErrInvalidStatus = errors.New("invalid status")
)
