package handlers

import (
	"context"
	"log/slog"

	"github.com/joe135730/Concensor-sub001/internal/auth"
	"github.com/joe135730/Concensor-sub001/internal/config"
	"github.com/joe135730/Concensor-sub001/internal/store"
	"github.com/joe135730/Concensor-sub001/internal/telemetry"
)

// IdentityProvider runs the OAuth web flow against GitHub.
type IdentityProvider interface {
	AuthorizeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.GitHubUser, error)
}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	users    store.UserStore
	sessions *auth.SessionStore
	github   IdentityProvider
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(
	cfg *config.Config,
	users store.UserStore,
	sessions *auth.SessionStore,
	github IdentityProvider,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		config:   cfg,
		users:    users,
		sessions: sessions,
		github:   github,
		metrics:  metrics,
		logger:   logger,
	}
}
