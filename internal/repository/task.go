package repository

import (
	"context"
	"database/sql"

	"github.com/taskboard/taskboard-go/internal/model"
)

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and sets the generated ID on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (user_id, title, due_date, status) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, task.UserID, task.Title, task.DueDate, task.Status)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ListByOwner retrieves all tasks belonging to a user in insertion order.
func (r *TaskRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Task, error) {
	query := `SELECT id, user_id, title, due_date, status, created_at
		FROM tasks WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.DueDate, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}
