package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskboard/taskboard-go/internal/crypto"
	"github.com/taskboard/taskboard-go/internal/session"
)

const testSecret = "test-secret"

// failingStore simulates a session backend outage.
type failingStore struct{}

func (failingStore) Save(context.Context, *session.Session) error { return errors.New("connection refused") }
func (failingStore) Get(context.Context, string) (*session.Session, error) {
	return nil, errors.New("connection refused")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("connection refused") }

func authedHandler(t *testing.T, wantUserID int64) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("no user ID in request context")
		}
		if userID != wantUserID {
			t.Errorf("context user ID = %d, want %d", userID, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuthValidCookie(t *testing.T) {
	gate := session.NewGate(session.NewMemoryStore(), testSecret, time.Hour)

	token, err := gate.Create(context.Background(), 7)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()

	SessionAuth(gate)(authedHandler(t, 7)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestSessionAuthMissingCookie(t *testing.T) {
	gate := session.NewGate(session.NewMemoryStore(), testSecret, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()

	SessionAuth(gate)(rejectAll(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthUnknownSession(t *testing.T) {
	gate := session.NewGate(session.NewMemoryStore(), testSecret, time.Hour)

	token, err := crypto.SignSessionToken("never-created", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()

	SessionAuth(gate)(rejectAll(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthStoreOutageIsNot401(t *testing.T) {
	gate := session.NewGate(failingStore{}, testSecret, time.Hour)

	// A well-formed, correctly signed token; only the store is broken.
	token, err := crypto.SignSessionToken("some-session", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()

	SessionAuth(gate)(rejectAll(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for store outage", rec.Code)
	}
}

// rejectAll fails the test if the middleware lets the request through.
func rejectAll(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request passed through middleware unexpectedly")
	})
}
