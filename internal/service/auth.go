package service

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard-go/internal/crypto"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailTaken       = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the part of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles registration, credential checks and profile lookups.
type AuthService struct {
	users UserStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user account. It has no session side effect; the
// caller logs in separately.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	if req.Email == "" {
		return 0, ErrEmailRequired
	}
	if req.Password == "" {
		return 0, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	return user.ID, nil
}

// Login validates credentials and returns the user ID on success.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (int64, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return 0, err
	}
	if !match {
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}

// GetUser retrieves a user's profile by ID. A miss here means a valid
// session references a missing user; the caller treats it as an internal
// fault, not a 404.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}
