package auth

import (
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "concensor_session"

// ErrSessionExpired is returned for a well-formed session past its expiry.
var ErrSessionExpired = errors.New("session expired")

func init() {
	gob.Register(uuid.UUID{})
	gob.Register(SessionData{})
}

// SessionData is the signed-in user stored in the session cookie.
type SessionData struct {
	UserID    uuid.UUID
	Login     string
	Name      string
	Email     string
	AvatarURL string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore manages session cookies.
type SessionStore struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewSessionStore creates a new session store.
// The secret must be at least 64 bytes: the first 32 sign the cookie, the
// next 32 encrypt it.
func NewSessionStore(secret string, maxAge time.Duration, secure bool) *SessionStore {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	cookie := securecookie.New(hashKey, blockKey)
	cookie.MaxAge(int(maxAge.Seconds()))

	return &SessionStore{
		cookie: cookie,
		name:   SessionCookieName,
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}
}

// Get retrieves the session from the request cookie.
func (s *SessionStore) Get(r *http.Request) (*SessionData, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, err
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	return &data, nil
}

// Set stores the session in a cookie, stamping its creation and expiry.
func (s *SessionStore) Set(w http.ResponseWriter, data *SessionData) error {
	now := time.Now()
	data.CreatedAt = now
	data.ExpiresAt = now.Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear removes the session cookie.
func (s *SessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
