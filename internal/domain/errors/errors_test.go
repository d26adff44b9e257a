package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindStatusMapping(t *testing.T) {
	cases := []struct {
		kind   Kind
		status string
		code   int
	}{
		{InvalidParameter, "BAD_REQUEST", http.StatusBadRequest},
		{InvalidToken, "BAD_REQUEST", http.StatusBadRequest},
		{NotAvailable, "BAD_REQUEST", http.StatusBadRequest},
		{Unauthorized, "UNAUTHORIZED", http.StatusUnauthorized},
		{InvalidCredentials, "UNAUTHORIZED", http.StatusUnauthorized},
		{Forbidden, "FORBIDDEN", http.StatusForbidden},
		{NotFound, "NOT_FOUND", http.StatusNotFound},
		{Unexpected, "INTERNAL_SERVER_ERROR", http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := c.kind.Status(); got != c.status {
			t.Errorf("%v.Status() = %q, want %q", c.kind, got, c.status)
		}
		if got := c.kind.HTTPCode(); got != c.code {
			t.Errorf("%v.HTTPCode() = %d, want %d", c.kind, got, c.code)
		}
	}
}

func TestIsMatchesOnKind(t *testing.T) {
	err := New(InvalidToken, LocationBody, "token does not match")
	if !errors.Is(err, &E{Kind: InvalidToken}) {
		t.Error("expected errors.Is to match on kind")
	}
	if errors.Is(err, &E{Kind: NotFound}) {
		t.Error("did not expect a NotFound match")
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", New(InvalidCredentials, LocationBody, "bad password"))
	if KindOf(err) != InvalidCredentials {
		t.Errorf("KindOf(wrapped) = %v, want InvalidCredentials", KindOf(err))
	}
}

func TestAsEHidesUnclassifiedDetail(t *testing.T) {
	e := AsE(errors.New("pq: connection refused"))
	if e.Kind != Unexpected {
		t.Errorf("kind = %v, want Unexpected", e.Kind)
	}
	if e.Message != "internal server error" {
		t.Errorf("message leaked internal detail: %q", e.Message)
	}
	if e.Location != LocationServer {
		t.Errorf("location = %q, want %q", e.Location, LocationServer)
	}
}
