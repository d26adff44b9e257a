package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/FabianaArciniegas/joker-task/internal/application/auth"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/envelope"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/middleware"
)

// AuthHandler exposes the credential lifecycle endpoints.
type AuthHandler struct {
	login    *auth.Login
	refresh  *auth.Refresh
	logout   *auth.Logout
	forgot   *auth.ForgotPassword
	reset    *auth.ResetPassword
	verify   *auth.VerifyUser
	validate *validator.Validate
}

func NewAuthHandler(login *auth.Login, refresh *auth.Refresh, logout *auth.Logout, forgot *auth.ForgotPassword, reset *auth.ResetPassword, verify *auth.VerifyUser) *AuthHandler {
	return &AuthHandler{
		login:    login,
		refresh:  refresh,
		logout:   logout,
		forgot:   forgot,
		reset:    reset,
		verify:   verify,
		validate: validator.New(),
	}
}

// TokensResponse is the data payload for login and refresh.
type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UsernameOrEmail string `json:"username_or_email" validate:"required"`
		Password        string `json:"password" validate:"required,max=128"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Identifier: body.UsernameOrEmail,
		Password:   body.Password,
	})
	if err != nil {
		middleware.RecordAuthAttempt("login", false)
		envelope.WriteError(w, r, err)
		return
	}
	middleware.RecordAuthAttempt("login", true)
	envelope.WriteSuccess(w, r, http.StatusOK, TokensResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    result.TokenType,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	result, err := h.refresh.Execute(r.Context(), auth.RefreshInput{RefreshToken: body.RefreshToken})
	if err != nil {
		middleware.RecordAuthAttempt("refresh", false)
		envelope.WriteError(w, r, err)
		return
	}
	middleware.RecordAuthAttempt("refresh", true)
	envelope.WriteSuccess(w, r, http.StatusOK, TokensResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    result.TokenType,
	})
}

// Logout clears the caller's stored refresh token. Requires a bearer token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		envelope.WriteError(w, r, domerrors.New(domerrors.Unauthorized, domerrors.LocationHeaders, "invalid credentials"))
		return
	}
	if err := h.logout.Execute(r.Context(), claims.ID); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UsernameOrEmail string `json:"username_or_email" validate:"required"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	if err := h.forgot.Execute(r.Context(), auth.ForgotPasswordInput{Identifier: body.UsernameOrEmail}); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID          string `json:"user_id" validate:"required"`
		ResetToken      string `json:"reset_token" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	if body.NewPassword != body.ConfirmPassword {
		envelope.WriteError(w, r, domerrors.New(domerrors.InvalidParameter, domerrors.LocationBody, "passwords do not match"))
		return
	}
	if err := ValidatePassword(body.NewPassword); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	user, err := h.reset.Execute(r.Context(), auth.ResetPasswordInput{
		UserID:      body.UserID,
		ResetToken:  body.ResetToken,
		NewPassword: body.NewPassword,
	})
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *AuthHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID      string `json:"user_id" validate:"required"`
		VerifyToken string `json:"verify_token" validate:"required"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	user, err := h.verify.Execute(r.Context(), auth.VerifyUserInput{
		UserID:      body.UserID,
		VerifyToken: body.VerifyToken,
	})
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, user)
}
