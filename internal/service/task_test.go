package service

import (
	"context"
	"testing"

	"github.com/taskboard/taskboard-go/internal/model"
)

type fakeTaskStore struct {
	tasks  []model.Task
	nextID int64
}

func (s *fakeTaskStore) Create(_ context.Context, task *model.Task) error {
	s.nextID++
	task.ID = s.nextID
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *fakeTaskStore) ListByOwner(_ context.Context, userID int64) ([]model.Task, error) {
	var owned []model.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func TestCreateTaskDefaults(t *testing.T) {
	store := &fakeTaskStore{}
	svc := NewTaskService(store)

	if _, err := svc.Create(context.Background(), 1, model.CreateTaskRequest{Title: "write spec"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	created := store.tasks[0]
	if created.Status != "todo" {
		t.Errorf("Create() status = %q, want %q", created.Status, "todo")
	}
	if created.DueDate != "" {
		t.Errorf("Create() dueDate = %q, want empty string", created.DueDate)
	}
}

func TestCreateTaskExplicitFields(t *testing.T) {
	store := &fakeTaskStore{}
	svc := NewTaskService(store)

	if _, err := svc.Create(context.Background(), 1, model.CreateTaskRequest{
		Title:   "ship it",
		DueDate: "2026-09-30",
		Status:  "in-progress",
	}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	created := store.tasks[0]
	if created.Status != "in-progress" {
		t.Errorf("Create() status = %q, want %q", created.Status, "in-progress")
	}
	if created.DueDate != "2026-09-30" {
		t.Errorf("Create() dueDate = %q, want %q", created.DueDate, "2026-09-30")
	}
}

func TestCreateTaskAcceptsEmptyTitle(t *testing.T) {
	store := &fakeTaskStore{}
	svc := NewTaskService(store)

	if _, err := svc.Create(context.Background(), 1, model.CreateTaskRequest{}); err != nil {
		t.Errorf("Create() with empty title unexpected error: %v", err)
	}
}

func TestListOwnerIsolation(t *testing.T) {
	store := &fakeTaskStore{}
	svc := NewTaskService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, model.CreateTaskRequest{Title: "mine"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, 2, model.CreateTaskRequest{Title: "theirs"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	tasks, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("List() returned %d tasks, want 1", len(tasks))
	}
	if tasks[0].Title != "mine" {
		t.Errorf("List() title = %q, want %q", tasks[0].Title, "mine")
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc := NewTaskService(&fakeTaskStore{})

	tasks, err := svc.List(context.Background(), 99)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if tasks == nil {
		t.Error("List() returned nil slice, want empty slice")
	}
	if len(tasks) != 0 {
		t.Errorf("List() returned %d tasks, want 0", len(tasks))
	}
}
