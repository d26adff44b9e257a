package middleware

import (
	"net/http"
	"strings"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/envelope"
)

// AuthValidator verifies the bearer access token and puts the claims in the
// context (see ClaimsFromContext). Any codec failure maps to unauthorized.
type AuthValidator struct {
	codec ports.TokenCodec
}

func NewAuthValidator(codec ports.TokenCodec) *AuthValidator {
	return &AuthValidator{codec: codec}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			envelope.WriteError(w, r, domerrors.New(domerrors.Unauthorized, domerrors.LocationHeaders, "missing or invalid authorization header"))
			return
		}
		claims, err := m.codec.Verify(strings.TrimPrefix(header, "Bearer "), ports.AccessToken)
		if err != nil {
			envelope.WriteError(w, r, domerrors.New(domerrors.Unauthorized, domerrors.LocationHeaders, "invalid credentials"))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}
