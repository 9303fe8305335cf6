package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard-go/internal/middleware"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
	"github.com/taskboard/taskboard-go/internal/service"
	"github.com/taskboard/taskboard-go/internal/session"
)

type fakeUserStore struct {
	users  map[string]model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if _, exists := s.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.Email] = *user
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

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

// newTestAPI assembles the routes the way cmd/api does, with in-memory
// stores so no database is needed.
func newTestAPI() http.Handler {
	gate := session.NewGate(session.NewMemoryStore(), "test-secret", time.Hour)

	authHandler := NewAuthHandler(service.NewAuthService(newFakeUserStore()), gate, time.Hour, false)
	taskHandler := NewTaskHandler(service.NewTaskService(&fakeTaskStore{}))

	r := chi.NewRouter()
	r.Post("/register", authHandler.HandleRegister)
	r.Post("/login", authHandler.HandleLogin)
	r.Post("/logout", authHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(gate))
		r.Get("/user", authHandler.HandleMe)
		r.Get("/tasks", taskHandler.HandleList)
		r.Post("/tasks", taskHandler.HandleCreate)
	})

	return r
}

func doRequest(t *testing.T, api http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// registerAndLogin creates an account and returns its session cookie.
func registerAndLogin(t *testing.T, api http.Handler, email, password string) *http.Cookie {
	t.Helper()

	creds := `{"email":"` + email + `","password":"` + password + `"}`

	if rec := doRequest(t, api, http.MethodPost, "/register", creds, nil); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec := doRequest(t, api, http.MethodPost, "/login", creds, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	return sessionCookie(t, rec)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp model.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response body %q: %v", rec.Body.String(), err)
	}
	return resp.Message
}
