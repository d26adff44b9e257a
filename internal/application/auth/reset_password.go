package auth

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	"github.com/FabianaArciniegas/joker-task/internal/domain"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

type ResetPasswordInput struct {
	UserID     string
	ResetToken string
	// NewPassword arrives already validated for equality with its
	// confirmation and for complexity at the request boundary.
	NewPassword string
}

// ResetPassword replaces the password after matching the presented token
// against the one stored on the user, then clears the token so the link is
// single-use.
type ResetPassword struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewResetPassword(users ports.UserRepository, hasher ports.PasswordHasher) *ResetPassword {
	return &ResetPassword{users: users, hasher: hasher}
}

func (uc *ResetPassword) Execute(ctx context.Context, input ResetPasswordInput) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !tokenMatches(user.PasswordResetToken, input.ResetToken) {
		return nil, domerrors.New(domerrors.InvalidToken, domerrors.LocationBody, "reset token does not match")
	}
	hash, err := uc.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, err
	}
	updated, err := uc.users.Patch(ctx, user.ID, map[string]any{
		"password":             hash,
		"password_reset_token": "",
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
