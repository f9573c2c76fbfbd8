// Package store persists the users who have signed in.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("not found")

// User is a person who has signed in at least once.
type User struct {
	ID        uuid.UUID
	GitHubID  int64
	Login     string
	Name      string
	Email     string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GitHubIdentity is the profile a user signed in with.
type GitHubIdentity struct {
	ID        int64
	Login     string
	Name      string
	Email     string
	AvatarURL string
}

// UserStore records sign-ins.
type UserStore interface {
	// UpsertGitHubUser creates the user on first sign-in and refreshes the
	// profile fields on every later one. The user ID never changes.
	UpsertGitHubUser(ctx context.Context, identity GitHubIdentity) (User, error)
	// GetUser looks a user up by ID.
	GetUser(ctx context.Context, id uuid.UUID) (User, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
