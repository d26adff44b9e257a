package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	"github.com/FabianaArciniegas/joker-task/internal/domain"
)

// newOpaqueToken returns a random single-use token for reset and verify
// links. Unlike the signed JWTs, these carry no claims; they are only
// compared against the copy stored on the user.
func newOpaqueToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// tokenMatches compares a presented token against the stored one. An empty
// stored token never matches: a cleared token cannot be replayed.
func tokenMatches(stored, presented string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func claimsFor(user domain.User) ports.TokenData {
	return ports.TokenData{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
	}
}
