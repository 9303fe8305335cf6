package model

import "time"

// DefaultTaskStatus is applied when a task is created without a status.
const DefaultTaskStatus = "todo"

// Task represents a user-owned task in the database.
type Task struct {
	ID        int64
	UserID    int64
	Title     string
	DueDate   string
	Status    string
	CreatedAt time.Time
}

// CreateTaskRequest represents a task creation request. Only title is
// commonly supplied; dueDate and status are optional.
type CreateTaskRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
	Status  string `json:"status"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
	Status  string `json:"status"`
}
