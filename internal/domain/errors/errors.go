package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of error categories the API can surface. Every
// error that crosses the request boundary maps to exactly one kind.
type Kind int

const (
	Unexpected Kind = iota
	InvalidParameter
	Unauthorized
	InvalidCredentials
	InvalidToken
	Forbidden
	NotFound
	NotAvailable
)

// Status returns the envelope status name for the kind.
func (k Kind) Status() string {
	switch k {
	case InvalidParameter, InvalidToken, NotAvailable:
		return "BAD_REQUEST"
	case Unauthorized, InvalidCredentials:
		return "UNAUTHORIZED"
	case Forbidden:
		return "FORBIDDEN"
	case NotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// HTTPCode returns the HTTP status code for the kind.
func (k Kind) HTTPCode() int {
	switch k {
	case InvalidParameter, InvalidToken, NotAvailable:
		return http.StatusBadRequest
	case Unauthorized, InvalidCredentials:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Description is the stable label written to the envelope error entry.
func (k Kind) Description() string {
	switch k {
	case InvalidParameter:
		return "Parameter error"
	case Unauthorized:
		return "Unauthorized error"
	case InvalidCredentials:
		return "Invalid credentials"
	case InvalidToken:
		return "Invalid token"
	case Forbidden:
		return "Access is prohibited"
	case NotFound:
		return "Not Found"
	case NotAvailable:
		return "Not available"
	default:
		return "Internal server error"
	}
}

// Location identifies which part of the request an error relates to.
type Location string

const (
	LocationPath    Location = "request.path_params"
	LocationQuery   Location = "request.query_params"
	LocationBody    Location = "request.body"
	LocationHeaders Location = "request.headers"
	LocationCookies Location = "request.cookies"
	LocationServer  Location = "request.server"
)

// E is an error classified by kind, carrying a client-facing message and
// the request location it originated from.
type E struct {
	Kind     Kind
	Message  string
	Location Location
}

func (e *E) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind.Description(), e.Message, e.Location)
}

// Is matches on kind only, so errors.Is works regardless of message.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	return ok && t.Kind == e.Kind
}

// New builds a classified error.
func New(kind Kind, location Location, format string, args ...any) *E {
	return &E{Kind: kind, Message: fmt.Sprintf(format, args...), Location: location}
}

// KindOf extracts the kind from err, or Unexpected for unclassified errors.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// AsE returns the classified form of err. Unclassified errors come back as
// Unexpected with a generic message; the original error text never reaches
// the client.
func AsE(err error) *E {
	var e *E
	if errors.As(err, &e) {
		return e
	}
	return &E{Kind: Unexpected, Message: "internal server error", Location: LocationServer}
}
