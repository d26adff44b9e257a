package auth

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

type RefreshInput struct {
	RefreshToken string
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// Refresh exchanges a valid refresh token for a new pair. The presented
// token must match the one stored on the user byte for byte; each exchange
// stores a new token, so refresh tokens are single-use.
type Refresh struct {
	users ports.UserRepository
	codec ports.TokenCodec
}

func NewRefresh(users ports.UserRepository, codec ports.TokenCodec) *Refresh {
	return &Refresh{users: users, codec: codec}
}

func (uc *Refresh) Execute(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	claims, err := uc.codec.Verify(input.RefreshToken, ports.RefreshToken)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, claims.ID)
	if err != nil {
		return nil, domerrors.New(domerrors.InvalidToken, domerrors.LocationBody, "refresh token does not resolve to a user")
	}
	if !tokenMatches(user.RefreshToken, input.RefreshToken) {
		return nil, domerrors.New(domerrors.InvalidToken, domerrors.LocationBody, "refresh token does not match the current session")
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
	return &RefreshResult{AccessToken: accessToken, RefreshToken: refreshToken, TokenType: "Bearer"}, nil
}
