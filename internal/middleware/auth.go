package middleware

import (
	"net/http"
)

// RequireGuest sends signed-in users to redirect instead of serving the
// page, e.g. so the login page is skipped once a session exists.
func RequireGuest(redirect string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetSession(r.Context()) != nil {
				http.Redirect(w, r, redirect, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
