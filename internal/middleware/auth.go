package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-go/internal/session"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionAuth returns middleware that resolves the session cookie through
// the gate and rejects the request before any store is touched. Absent,
// tampered, unknown, and expired tokens are all reported the same way.
func SessionAuth(gate *session.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			userID, err := gate.Resolve(r.Context(), cookie.Value)
			if err != nil {
				// Only a missing/expired/tampered session is the client's
				// fault; a session store outage is not.
				if errors.Is(err, session.ErrNotFound) {
					writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				} else {
					writeJSONError(w, http.StatusInternalServerError, "internal server error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
