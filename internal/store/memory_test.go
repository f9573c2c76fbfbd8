package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joe135730/Concensor-sub001/internal/store"
)

var _ store.UserStore = (*store.Memory)(nil)
var _ store.UserStore = (*store.Postgres)(nil)

func TestMemory_UpsertCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	first, err := s.UpsertGitHubUser(ctx, store.GitHubIdentity{ID: 42, Login: "octocat", Email: "old@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	second, err := s.UpsertGitHubUser(ctx, store.GitHubIdentity{ID: 42, Login: "octocat", Name: "The Octocat", Email: "new@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "The Octocat", second.Name)
	assert.Equal(t, "new@example.com", second.Email)

	got, err := s.GetUser(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestMemory_DistinctGitHubUsers(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	a, err := s.UpsertGitHubUser(ctx, store.GitHubIdentity{ID: 1, Login: "a"})
	require.NoError(t, err)
	b, err := s.UpsertGitHubUser(ctx, store.GitHubIdentity{ID: 2, Login: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemory_GetUserNotFound(t *testing.T) {
	_, err := store.NewMemory().GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemory_ConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, 20)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := s.UpsertGitHubUser(ctx, store.GitHubIdentity{ID: 99, Login: "same"})
			assert.NoError(t, err)
			ids[i] = u.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}
