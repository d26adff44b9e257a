package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/envelope"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ProcessID assigns a correlation id per inbound request and threads a
// child logger tagged with it through the request context. Repositories and
// services pick the logger up with zerolog.Ctx.
func ProcessID(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			reqLog := log.With().Str("process_id", id).Logger()
			ctx := envelope.WithProcessID(r.Context(), id)
			ctx = reqLog.WithContext(ctx)
			reqLog.Info().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithClaims injects the verified token claims into the context.
func WithClaims(ctx context.Context, claims *ports.TokenData) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the claims set by the auth middleware, or nil.
func ClaimsFromContext(ctx context.Context) *ports.TokenData {
	v := ctx.Value(claimsContextKey)
	if v == nil {
		return nil
	}
	claims, _ := v.(*ports.TokenData)
	return claims
}
