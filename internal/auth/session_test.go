package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joe135730/Concensor-sub001/internal/auth"
)

// testSecret is a 64-byte secret for testing
const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func sessionCookie(t *testing.T, store *auth.SessionStore, data *auth.SessionData) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	require.NoError(t, store.Set(w, data))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSessionStore_SetAndGet(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	session := &auth.SessionData{
		UserID:    uuid.New(),
		Login:     "octocat",
		Name:      "The Octocat",
		Email:     "octocat@example.com",
		AvatarURL: "https://example.com/avatar.png",
	}

	cookie := sessionCookie(t, store, session)
	assert.Equal(t, auth.SessionCookieName, cookie.Name)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	got, err := store.Get(req)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Login, got.Login)
	assert.Equal(t, session.Name, got.Name)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.AvatarURL, got.AvatarURL)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)
}

func TestSessionStore_NoCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	_, err := store.Get(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, http.ErrNoCookie)
}

func TestSessionStore_ExpiredSession(t *testing.T) {
	// Negative max age produces a session that is already expired.
	store := auth.NewSessionStore(testSecret, -time.Hour, false)

	cookie := sessionCookie(t, store, &auth.SessionData{UserID: uuid.New(), Login: "octocat"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, err := store.Get(req)
	assert.Error(t, err)
}

func TestSessionStore_Clear(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionStore_SecureCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, true)

	cookie := sessionCookie(t, store, &auth.SessionData{UserID: uuid.New(), Login: "octocat"})

	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestSessionStore_InvalidCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "invalid-cookie-value"})

	_, err := store.Get(req)
	assert.Error(t, err)
}

func TestSessionStore_ForeignSecret(t *testing.T) {
	issuer := auth.NewSessionStore(testSecret, time.Hour, false)
	other := auth.NewSessionStore("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210", time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, issuer, &auth.SessionData{UserID: uuid.New()}))

	_, err := other.Get(req)
	assert.Error(t, err)
}
