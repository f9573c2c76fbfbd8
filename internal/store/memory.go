package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process UserStore for development and tests.
type Memory struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]User
	byGitHub map[int64]uuid.UUID
	now      func() time.Time
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uuid.UUID]User),
		byGitHub: make(map[int64]uuid.UUID),
		now:      time.Now,
	}
}

func (m *Memory) UpsertGitHubUser(_ context.Context, identity GitHubIdentity) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	u, ok := m.users[m.byGitHub[identity.ID]]
	if !ok {
		u = User{ID: uuid.New(), GitHubID: identity.ID, CreatedAt: now}
		m.byGitHub[identity.ID] = u.ID
	}

	u.Login = identity.Login
	u.Name = identity.Name
	u.Email = identity.Email
	u.AvatarURL = identity.AvatarURL
	u.UpdatedAt = now

	m.users[u.ID] = u
	return u, nil
}

func (m *Memory) GetUser(_ context.Context, id uuid.UUID) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return User{}, fmt.Errorf("store.GetUser: %w", ErrNotFound)
	}
	return u, nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}
