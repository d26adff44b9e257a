package auth

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

type LoginInput struct {
	Identifier string // username or email
	Password   string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// Login authenticates by username-or-email and password and issues a fresh
// token pair. The new refresh token overwrites the one stored on the user,
// which invalidates any previously issued refresh token.
type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, codec ports.TokenCodec) *Login {
	return &Login{users: users, hasher: hasher, codec: codec}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByIdentifier(ctx, input.Identifier)
	if err != nil {
		return nil, err
	}
	if !uc.hasher.Verify(input.Password, user.Password) {
		return nil, domerrors.New(domerrors.InvalidCredentials, domerrors.LocationBody, "invalid credentials")
	}
	if !user.IsVerified {
		return nil, domerrors.New(domerrors.Unauthorized, domerrors.LocationBody, "user %s is not verified", user.Username)
	}
	data := claimsFor(user)
	accessToken, err := uc.codec.Issue(data, ports.AccessToken)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.codec.Issue(data, ports.RefreshToken)
	if err != nil {
		return nil, err
	}
	if _, err := uc.users.Patch(ctx, user.ID, map[string]any{"refresh_token": refreshToken}); err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: accessToken, RefreshToken: refreshToken, TokenType: "Bearer"}, nil
}
