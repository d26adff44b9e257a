package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/FabianaArciniegas/joker-task/internal/application/user"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/envelope"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/middleware"
)

// UsersHandler exposes user registration and account management.
type UsersHandler struct {
	users    *user.Service
	validate *validator.Validate
}

func NewUsersHandler(users *user.Service) *UsersHandler {
	return &UsersHandler{users: users, validate: validator.New()}
}

// Register creates a new unverified account. This is the only public
// user endpoint.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		FullName string `json:"full_name" validate:"required,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	if err := ValidatePassword(body.Password); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	created, err := h.users.Register(r.Context(), user.RegisterInput{
		Username: body.Username,
		FullName: body.FullName,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusCreated, created)
}

func (h *UsersHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAll(r.Context())
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, users)
}

func (h *UsersHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.users.GetByID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, found)
}

func (h *UsersHandler) Patch(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := requireSelf(r, userID); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	var body struct {
		Username       *string `json:"username" validate:"omitempty,min=3,max=50"`
		FullName       *string `json:"full_name" validate:"omitempty,max=100"`
		Email          *string `json:"email" validate:"omitempty,email"`
		ProfilePicture *string `json:"profile_picture"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	fields := map[string]any{}
	if body.Username != nil {
		fields["username"] = *body.Username
	}
	if body.FullName != nil {
		fields["full_name"] = *body.FullName
	}
	if body.Email != nil {
		fields["email"] = *body.Email
	}
	if body.ProfilePicture != nil {
		fields["profile_picture"] = *body.ProfilePicture
	}
	updated, err := h.users.Patch(r.Context(), userID, fields)
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, updated)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := requireSelf(r, userID); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	if err := h.users.Delete(r.Context(), userID); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, nil)
}

// requireSelf rejects requests that target a user other than the
// authenticated caller.
func requireSelf(r *http.Request, userID string) error {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return domerrors.New(domerrors.Unauthorized, domerrors.LocationHeaders, "invalid credentials")
	}
	if claims.ID != userID {
		return domerrors.New(domerrors.Forbidden, domerrors.LocationPath, "cannot operate on another user's account")
	}
	return nil
}
