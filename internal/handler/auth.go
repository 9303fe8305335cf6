package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/taskboard/taskboard-go/internal/middleware"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/service"
	"github.com/taskboard/taskboard-go/internal/session"
)

// AuthHandler handles HTTP requests for registration, login and profile.
type AuthHandler struct {
	service       *service.AuthService
	gate          *session.Gate
	cookieTTL     time.Duration
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler. secureCookies should be true
// whenever the API is served over HTTPS.
func NewAuthHandler(svc *service.AuthService, gate *session.Gate, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		service:       svc,
		gate:          gate,
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
	}
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	if _, err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired),
			errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "User registered successfully"})
}

// HandleLogin handles POST /login requests. On success a session cookie is
// set; the failure message never distinguishes unknown email from wrong
// password.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	userID, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	token, err := h.gate.Create(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Login successful"})
}

// HandleLogout handles POST /logout requests. Logging out without a session
// is not an error.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.gate.Destroy(r.Context(), cookie.Value); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
			return
		}
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Logged out"})
}

// HandleMe handles GET /user requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// setSessionCookie marks the cookie for cross-origin credentialed requests;
// browsers require Secure alongside SameSite=None, so secureCookies must be
// enabled in any deployment fronted by HTTPS.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}
