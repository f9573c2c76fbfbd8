package handlers

import (
	"errors"
	"net/http"

	"github.com/joe135730/Concensor-sub001/internal/auth"
	"github.com/joe135730/Concensor-sub001/internal/store"
)

// Sign-in error codes passed back to the login page.
const (
	errInvalidState  = "invalid_state"
	errGitHub        = "github_error"
	errTokenExchange = "token_exchange"
	errUserFetch     = "user_fetch"
	errDatabase      = "database"
	errSession       = "session"
)

// LoginStart initiates the GitHub OAuth flow.
func (h *Handlers) LoginStart(w http.ResponseWriter, r *http.Request) {
	state, err := auth.NewState()
	if err != nil {
		h.logger.Error("failed to generate oauth state", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Store state in cookie for verification
	http.SetCookie(w, &http.Cookie{
		Name:     auth.StateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600, // 10 minutes
		HttpOnly: true,
		Secure:   h.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.github.AuthorizeURL(state), http.StatusTemporaryRedirect)
}

// AuthCallback handles the OAuth callback from GitHub.
func (h *Handlers) AuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	// Verify state
	stateCookie, err := r.Cookie(auth.StateCookieName)
	if err != nil {
		h.logger.Error("missing oauth state cookie")
		h.loginFailed(w, r, errInvalidState)
		return
	}

	if query.Get("state") == "" || query.Get("state") != stateCookie.Value {
		h.logger.Error("oauth state mismatch")
		h.loginFailed(w, r, errInvalidState)
		return
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:   auth.StateCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	// Check for error from GitHub
	if errMsg := query.Get("error"); errMsg != "" {
		h.logger.Error("github oauth error", "error", errMsg)
		h.loginFailed(w, r, errGitHub)
		return
	}

	githubUser, err := h.github.Exchange(ctx, query.Get("code"))
	if err != nil {
		h.logger.Error("github sign-in failed", "error", err)
		code := errGitHub
		switch {
		case errors.Is(err, auth.ErrTokenExchange):
			code = errTokenExchange
		case errors.Is(err, auth.ErrUserFetch):
			code = errUserFetch
		}
		h.loginFailed(w, r, code)
		return
	}

	user, err := h.users.UpsertGitHubUser(ctx, store.GitHubIdentity{
		ID:        githubUser.ID,
		Login:     githubUser.Login,
		Name:      githubUser.Name,
		Email:     githubUser.Email,
		AvatarURL: githubUser.AvatarURL,
	})
	if err != nil {
		h.logger.Error("failed to upsert user", "error", err)
		h.loginFailed(w, r, errDatabase)
		return
	}

	session := &auth.SessionData{
		UserID:    user.ID,
		Login:     user.Login,
		Name:      githubUser.DisplayName(),
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}

	if err := h.sessions.Set(w, session); err != nil {
		h.logger.Error("failed to set session", "error", err)
		h.loginFailed(w, r, errSession)
		return
	}

	h.logger.Info("user signed in", "user_id", user.ID, "login", user.Login)

	http.Redirect(w, r, h.config.AfterLoginURL, http.StatusSeeOther)
}

// Logout clears the session and redirects to home.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) loginFailed(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/login?error="+code, http.StatusSeeOther)
}
