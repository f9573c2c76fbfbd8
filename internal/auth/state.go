package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// StateCookieName holds the OAuth state between redirect and callback.
const StateCookieName = "oauth_state"

// NewState returns a random OAuth state value.
func NewState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("auth.NewState: %w", err)
	}
	return hex.EncodeToString(b), nil
}
