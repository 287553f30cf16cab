package user

import (
	"context"
	"time"
)

// User represents a registered user. Users are immutable after registration
// and are identified by an opaque string id; email is also unique.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence collaborator for users. Lookups return (nil, nil)
// when the user does not exist; Create fails on id or email collision.
type Store interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
