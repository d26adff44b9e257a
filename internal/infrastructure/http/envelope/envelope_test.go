package envelope

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

func requestWithProcessID(t *testing.T, id string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return r.WithContext(WithProcessID(r.Context(), id))
}

func TestWriteSuccessShape(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, requestWithProcessID(t, "pid-1"), http.StatusCreated, map[string]string{"id": "u-1"})

	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d", w.Code)
	}
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Status != "CREATED" {
		t.Errorf("status = %q", env.Status)
	}
	if len(env.Errors) != 0 {
		t.Errorf("errors must be empty on success, got %v", env.Errors)
	}
	if env.ProcessID != "pid-1" {
		t.Errorf("process_id = %q", env.ProcessID)
	}
	if env.Data == nil {
		t.Error("data missing")
	}
}

func TestWriteErrorClassified(t *testing.T) {
	w := httptest.NewRecorder()
	err := domerrors.New(domerrors.NotAvailable, domerrors.LocationBody, "the user alice is not available")
	WriteError(w, requestWithProcessID(t, "pid-2"), err)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", w.Code)
	}
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Status != "BAD_REQUEST" {
		t.Errorf("status = %q", env.Status)
	}
	if env.Data != nil {
		t.Error("data must be absent on error")
	}
	if len(env.Errors) != 1 {
		t.Fatalf("errors = %v", env.Errors)
	}
	entry := env.Errors[0]
	if entry.Description != "Not available" || entry.Location != domerrors.LocationBody {
		t.Errorf("entry = %+v", entry)
	}
}

func TestWriteErrorHidesUnexpectedDetail(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, requestWithProcessID(t, "pid-3"), errors.New("mongo: connection reset"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", w.Code)
	}
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Errors[0].Message != "internal server error" {
		t.Errorf("internal detail leaked: %q", env.Errors[0].Message)
	}
}
