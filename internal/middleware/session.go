package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/joe135730/Concensor-sub001/internal/auth"
)

type contextKey string

// SessionContextKey is the context key for the session.
const SessionContextKey contextKey = "session"

// Session returns a middleware that loads the session into the request context.
// A cookie that is expired or cannot be decoded is cleared.
func Session(store *auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r)
			switch {
			case err == nil && session != nil:
				r = r.WithContext(WithSession(r.Context(), session))
			case err != nil && !errors.Is(err, http.ErrNoCookie):
				// Expired or unreadable: drop it so it is not decoded again.
				store.Clear(w)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *auth.SessionData) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// GetSession retrieves the session from context.
func GetSession(ctx context.Context) *auth.SessionData {
	session, ok := ctx.Value(SessionContextKey).(*auth.SessionData)
	if !ok {
		return nil
	}
	return session
}
