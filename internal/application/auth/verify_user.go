package auth

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	"github.com/FabianaArciniegas/joker-task/internal/domain"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

type VerifyUserInput struct {
	UserID      string
	VerifyToken string
}

// VerifyUser flips is_verified once the presented token matches the one
// assigned at registration, then clears it. Verification is one-way.
type VerifyUser struct {
	users ports.UserRepository
}

func NewVerifyUser(users ports.UserRepository) *VerifyUser {
	return &VerifyUser{users: users}
}

func (uc *VerifyUser) Execute(ctx context.Context, input VerifyUserInput) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !tokenMatches(user.UserVerifyToken, input.VerifyToken) {
		return nil, domerrors.New(domerrors.InvalidToken, domerrors.LocationBody, "verify token does not match")
	}
	updated, err := uc.users.Patch(ctx, user.ID, map[string]any{
		"is_verified":       true,
		"user_verify_token": "",
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
