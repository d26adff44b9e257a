package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

// Expiry policy per token kind.
const (
	AccessTokenExpiry  = 30 * time.Minute
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// Codec implements ports.TokenCodec with HS256. Access and refresh tokens
// sign with independent secrets so a leaked access secret cannot mint
// refresh tokens.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

type tokenClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

func NewCodec(accessSecret, refreshSecret string) *Codec {
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

func (c *Codec) secretFor(kind ports.TokenKind) []byte {
	if kind == ports.RefreshToken {
		return c.refreshSecret
	}
	return c.accessSecret
}

func expiryFor(kind ports.TokenKind) time.Duration {
	if kind == ports.RefreshToken {
		return RefreshTokenExpiry
	}
	return AccessTokenExpiry
}

// Issue signs the claim set under the kind's secret with an absolute exp
// computed from the codec clock.
func (c *Codec) Issue(data ports.TokenData, kind ports.TokenKind) (string, error) {
	now := c.now()
	claims := tokenClaims{
		ID:       data.ID,
		Username: data.Username,
		FullName: data.FullName,
		Email:    data.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryFor(kind))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secretFor(kind))
}

// Verify parses and validates a token of the given kind. Bad signature or
// format, expiry, and a missing id claim all map to the invalid-token kind;
// the jwt error stays wrapped for callers that want the distinction.
func (c *Codec) Verify(signed string, kind ports.TokenKind) (*ports.TokenData, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secretFor(kind), nil
	}, jwt.WithTimeFunc(c.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, &wrappedTokenError{cause: err}
	}
	if !token.Valid || claims.ID == "" {
		return nil, domerrors.New(domerrors.InvalidToken, domerrors.LocationBody, "token is missing the id claim")
	}
	return &ports.TokenData{
		ID:       claims.ID,
		Username: claims.Username,
		FullName: claims.FullName,
		Email:    claims.Email,
	}, nil
}

// wrappedTokenError classifies a jwt parse failure as invalid-token while
// keeping the cause reachable through errors.Is/As.
type wrappedTokenError struct {
	cause error
}

func (e *wrappedTokenError) Error() string { return "invalid token: " + e.cause.Error() }

func (e *wrappedTokenError) Unwrap() []error {
	return []error{
		e.cause,
		domerrors.New(domerrors.InvalidToken, domerrors.LocationBody, "token could not be verified"),
	}
}
