package auth

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
)

// Logout clears the stored refresh token unconditionally. Logging out twice
// is not an error; an already-empty token stays empty.
type Logout struct {
	users ports.UserRepository
}

func NewLogout(users ports.UserRepository) *Logout {
	return &Logout{users: users}
}

func (uc *Logout) Execute(ctx context.Context, userID string) error {
	_, err := uc.users.Patch(ctx, userID, map[string]any{"refresh_token": ""})
	return err
}
