package user

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store implementation, used in tests and anywhere
// a database is not available.
type MemStore struct {
	mu      sync.RWMutex
	byID    map[string]*User
	ordered []string
}

// NewMemStore creates an empty in-memory user store
func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[string]*User)}
}

// Create stores a copy of the user, failing on id or email collision
func (m *MemStore) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[u.ID]; exists {
		return fmt.Errorf("user id already exists: %s", u.ID)
	}
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}

	cp := *u
	m.byID[u.ID] = &cp
	m.ordered = append(m.ordered, u.ID)
	return nil
}

// GetByID returns the user with the given id, or (nil, nil) if absent
func (m *MemStore) GetByID(_ context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByEmail returns the user with the given email, or (nil, nil) if absent
func (m *MemStore) GetByEmail(_ context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// List returns all users in insertion order
func (m *MemStore) List(_ context.Context) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*User, 0, len(m.ordered))
	for _, id := range m.ordered {
		cp := *m.byID[id]
		users = append(users, &cp)
	}
	return users, nil
}
