// Package envelope renders the uniform response wrapper: an outcome status,
// optional data, an ordered error list, and the request's correlation id.
package envelope

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

// ResponseError is one envelope error entry.
type ResponseError struct {
	Description string             `json:"description"`
	Message     string             `json:"message"`
	Location    domerrors.Location `json:"location"`
}

// Envelope is the uniform response shape. Errors is empty exactly when the
// status indicates success; Data is absent on error.
type Envelope struct {
	Status    string          `json:"status"`
	Data      any             `json:"data,omitempty"`
	Errors    []ResponseError `json:"errors"`
	ProcessID string          `json:"process_id"`
}

type ctxKey struct{}

// WithProcessID stores the request's correlation id in the context. One id
// is assigned per inbound request and lives exactly as long as it.
func WithProcessID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ProcessIDFrom returns the correlation id, or empty outside a request.
func ProcessIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func statusName(code int) string {
	switch code {
	case http.StatusCreated:
		return "CREATED"
	default:
		return "OK"
	}
}

// WriteSuccess writes data inside a success envelope.
func WriteSuccess(w http.ResponseWriter, r *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Envelope{
		Status:    statusName(code),
		Data:      data,
		Errors:    []ResponseError{},
		ProcessID: ProcessIDFrom(r.Context()),
	})
}

// WriteError maps any error to its kind, logs it, and writes a one-entry
// error envelope. Unclassified errors become the unexpected kind: full
// detail stays server-side, the client sees a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	e := domerrors.AsE(err)
	log := zerolog.Ctx(r.Context())
	if e.Kind == domerrors.Unexpected {
		log.Error().Err(err).Msg("unexpected error")
	} else {
		log.Error().Str("kind", e.Kind.Description()).Msg(e.Message)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Kind.HTTPCode())
	_ = json.NewEncoder(w).Encode(Envelope{
		Status: e.Kind.Status(),
		Errors: []ResponseError{{
			Description: e.Kind.Description(),
			Message:     e.Message,
			Location:    e.Location,
		}},
		ProcessID: ProcessIDFrom(r.Context()),
	})
}
