package memory

import (
	"Banter/internal/core/users"
	"context"
	"sync"
)

type memoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*users.User
}

// NewUserRepository creates an in-memory user repository
func NewUserRepository() users.Repository {
	return &memoryUserRepo{users: make(map[string]*users.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return users.ErrUsernameTaken
	}

	cloned := *user
	cloned.PasswordHash = append([]byte(nil), user.PasswordHash...)
	r.users[user.Username] = &cloned
	return nil
}

func (r *memoryUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, users.ErrUserNotFound
	}

	cloned := *user
	cloned.PasswordHash = append([]byte(nil), user.PasswordHash...)
	return &cloned, nil
}
