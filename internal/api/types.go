// Package api defines the request and response types for the HTTP surface.
package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// SignupRequest is the request body for POST /api/auth/signup.
// Gin's binding tags enforce required fields, email format and password length.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both signup and login: the public profile
// of the account plus a freshly minted session token. It never carries
// the password hash.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// CreateTaskRequest is the request body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	DueDate     *types.Date `json:"dueDate"`
}

// UpdateTaskRequest is the request body for PUT /api/tasks/:id.
// All fields are optional; a nil pointer means "leave unchanged" while a
// present value is applied even when it is empty. Presence is what counts,
// not truthiness.
type UpdateTaskRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *string     `json:"status"`
	DueDate     *types.Date `json:"dueDate"`
}

// Task is the wire representation of a task record.
type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	DueDate     *types.Date `json:"dueDate,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ErrorResponse is the uniform error body for all failure statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
