package auth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
)

type ForgotPasswordInput struct {
	Identifier string // username or email
}

// ForgotPassword generates an opaque reset token, stores it on the user,
// and queues the reset email. An unknown identifier fails with
// invalid-credentials, which leaks account existence; that behavior is
// deliberate and matches the rest of the identifier flows.
type ForgotPassword struct {
	users    ports.UserRepository
	enqueuer ports.TaskEnqueuer
}

func NewForgotPassword(users ports.UserRepository, enqueuer ports.TaskEnqueuer) *ForgotPassword {
	return &ForgotPassword{users: users, enqueuer: enqueuer}
}

func (uc *ForgotPassword) Execute(ctx context.Context, input ForgotPasswordInput) error {
	user, err := uc.users.GetByIdentifier(ctx, input.Identifier)
	if err != nil {
		return err
	}
	token, err := newOpaqueToken()
	if err != nil {
		return err
	}
	if _, err := uc.users.Patch(ctx, user.ID, map[string]any{"password_reset_token": token}); err != nil {
		return err
	}
	if err := uc.enqueuer.EnqueuePasswordResetEmail(ctx, user.ID, user.Email, token, user.FullName); err != nil {
		// Fire-and-forget: the token is stored, delivery is best effort.
		zerolog.Ctx(ctx).Warn().Err(err).Str("user_id", user.ID).Msg("enqueue password reset email failed")
	}
	return nil
}
