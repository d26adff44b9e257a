package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/FabianaArciniegas/joker-task/internal/application/workspace"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/envelope"
)

// WorkspacesHandler exposes workspace CRUD. Every route sits behind the
// bearer middleware.
type WorkspacesHandler struct {
	workspaces *workspace.Service
	validate   *validator.Validate
}

func NewWorkspacesHandler(workspaces *workspace.Service) *WorkspacesHandler {
	return &WorkspacesHandler{workspaces: workspaces, validate: validator.New()}
}

func (h *WorkspacesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WorkspaceName  string `json:"workspace_name" validate:"required,min=1,max=100"`
		Description    string `json:"description" validate:"max=500"`
		WorkspaceImage string `json:"workspace_image"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	created, err := h.workspaces.Create(r.Context(), workspace.CreateInput{
		WorkspaceName:  body.WorkspaceName,
		Description:    body.Description,
		WorkspaceImage: body.WorkspaceImage,
	})
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusCreated, created)
}

func (h *WorkspacesHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.workspaces.GetAll(r.Context())
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, workspaces)
}

func (h *WorkspacesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.workspaces.GetByID(r.Context(), chi.URLParam(r, "workspaceID"))
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, found)
}

func (h *WorkspacesHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WorkspaceName  *string `json:"workspace_name" validate:"omitempty,min=1,max=100"`
		Description    *string `json:"description" validate:"omitempty,max=500"`
		WorkspaceImage *string `json:"workspace_image"`
	}
	if err := decodeAndValidate(r, h.validate, &body); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	fields := map[string]any{}
	if body.WorkspaceName != nil {
		fields["workspace_name"] = *body.WorkspaceName
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.WorkspaceImage != nil {
		fields["workspace_image"] = *body.WorkspaceImage
	}
	updated, err := h.workspaces.Patch(r.Context(), chi.URLParam(r, "workspaceID"), fields)
	if err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, updated)
}

func (h *WorkspacesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workspaces.Delete(r.Context(), chi.URLParam(r, "workspaceID")); err != nil {
		envelope.WriteError(w, r, err)
		return
	}
	envelope.WriteSuccess(w, r, http.StatusOK, nil)
}
