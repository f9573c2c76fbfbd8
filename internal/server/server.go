// Package server assembles the HTTP router.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/joe135730/Concensor-sub001/internal/auth"
	"github.com/joe135730/Concensor-sub001/internal/config"
	"github.com/joe135730/Concensor-sub001/internal/handlers"
	"github.com/joe135730/Concensor-sub001/internal/middleware"
	"github.com/joe135730/Concensor-sub001/internal/static"
	"github.com/joe135730/Concensor-sub001/internal/telemetry"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Config   *config.Config
	Handlers *handlers.Handlers
	Sessions *auth.SessionStore
	Metrics  *telemetry.Metrics
	Logger   *slog.Logger
}

// NewRouter returns the application's HTTP handler.
func NewRouter(d Deps) http.Handler {
	h := d.Handlers

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.Session(d.Sessions))

	r.Handle(static.Prefix+"*", static.Handler())

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	// Pages
	r.Get("/", h.Home)
	r.With(middleware.RequireGuest(d.Config.AfterLoginURL)).Get("/login", h.Login)

	// Sign-in flow
	r.Get("/auth/github", h.LoginStart)
	r.Get("/auth/callback", h.AuthCallback)
	r.Get("/logout", h.Logout)

	r.NotFound(h.NotFound)

	return r
}
