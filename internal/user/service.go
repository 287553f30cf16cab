package user

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidInput = errors.New("name, email and mobile are required")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Service handles user business logic
type Service struct {
	store Store
}

// NewService creates a new user service with the store dependency injected
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates a new user with a generated id. Email must be unique.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	mobile := strings.TrimSpace(req.Mobile)

	if name == "" || email == "" || mobile == "" {
		return nil, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Mobile:    mobile,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// GetByID retrieves a user by their id
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// GetByEmail retrieves a user by their email
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// List retrieves all registered users
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.store.List(ctx)
}
