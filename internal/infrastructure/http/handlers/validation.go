package handlers

import (
	"encoding/json"
	"net/http"
	"unicode"

	"github.com/go-playground/validator/v10"

	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

// MinPasswordLength is the complexity floor for new passwords.
const MinPasswordLength = 8

// ValidatePassword enforces the complexity policy: minimum length plus one
// uppercase, one lowercase, one digit, and one special character. Checks
// run in order and stop at the first violated rule.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "password must be at least %d characters long", MinPasswordLength)
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "password must contain an uppercase letter")
	case !hasLower:
		return domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "password must contain a lowercase letter")
	case !hasDigit:
		return domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "password must contain a digit")
	case !hasSpecial:
		return domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "password must contain a special character")
	}
	return nil
}

// decodeAndValidate decodes the JSON body into dst and runs its validate
// tags. Failures are parameter errors located in the body.
func decodeAndValidate(r *http.Request, validate *validator.Validate, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "%s", err.Error())
	}
	return nil
}
