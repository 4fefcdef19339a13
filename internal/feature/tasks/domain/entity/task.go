// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Status represents the completion state of a task.
type Status string

const (
	// StatusPending is the default state of a newly created task.
	StatusPending Status = "pending"

	// StatusCompleted marks a task as done.
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the two recognized status values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task represents a single tracked task owned by exactly one user.
// The owner is set at creation and never reassigned.
type Task struct {
	// ID is the opaque unique identifier for the task, assigned at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Title is the required short text of the task.
	Title string `gorm:"size:255;not null"`

	// Description is optional free text. Empty is a legal value.
	Description string `gorm:"type:text"`

	// Status is either StatusPending or StatusCompleted.
	Status Status `gorm:"size:16;not null;default:pending"`

	// DueDate is the optional date the task is due.
	DueDate *time.Time

	// OwnerID references the User that created the task.
	// Only the owner may read, modify or delete the task.
	OwnerID string `gorm:"size:36;not null;index"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time
}
