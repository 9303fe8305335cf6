package service

import (
	"context"

	"github.com/taskboard/taskboard-go/internal/model"
)

// TaskStore is the part of the task repository the task service needs.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListByOwner(ctx context.Context, userID int64) ([]model.Task, error)
}

// TaskService handles task creation and owner-scoped listing.
type TaskService struct {
	tasks TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create adds a task for the owner. Status defaults to "todo" and dueDate to
// the empty string when absent. An empty title is accepted as-is.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req model.CreateTaskRequest) (int64, error) {
	status := req.Status
	if status == "" {
		status = model.DefaultTaskStatus
	}

	task := &model.Task{
		UserID:  ownerID,
		Title:   req.Title,
		DueDate: req.DueDate,
		Status:  status,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return 0, err
	}

	return task.ID, nil
}

// List returns all of the owner's tasks in insertion order. Owners with no
// tasks get an empty list, not an error.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]model.TaskResponse, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]model.TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = model.TaskResponse{
			ID:      t.ID,
			Title:   t.Title,
			DueDate: t.DueDate,
			Status:  t.Status,
		}
	}
	return result, nil
}
