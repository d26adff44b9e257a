package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/FabianaArciniegas/joker-task/internal/domain"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

type fakeWorkspaces struct {
	byID map[string]domain.Workspace
}

func newFakeWorkspaces() *fakeWorkspaces {
	return &fakeWorkspaces{byID: map[string]domain.Workspace{}}
}

func (f *fakeWorkspaces) Create(ctx context.Context, ws domain.Workspace) error {
	f.byID[ws.ID] = ws
	return nil
}

func (f *fakeWorkspaces) GetByID(ctx context.Context, id string) (domain.Workspace, error) {
	ws, ok := f.byID[id]
	if !ok || ws.Deleted {
		return domain.Workspace{}, domerrors.New(domerrors.NotFound, domerrors.LocationPath, "instance %s not found", id)
	}
	return ws, nil
}

func (f *fakeWorkspaces) GetAll(ctx context.Context) ([]domain.Workspace, error) {
	var out []domain.Workspace
	for _, ws := range f.byID {
		if !ws.Deleted {
			out = append(out, ws)
		}
	}
	if len(out) == 0 {
		return nil, domerrors.New(domerrors.NotFound, domerrors.LocationPath, "there are no instances")
	}
	return out, nil
}

func (f *fakeWorkspaces) Patch(ctx context.Context, id string, fields map[string]any) (domain.Workspace, error) {
	ws, err := f.GetByID(ctx, id)
	if err != nil {
		return domain.Workspace{}, err
	}
	if v, ok := fields["workspace_name"].(string); ok {
		ws.WorkspaceName = v
	}
	if v, ok := fields["description"].(string); ok {
		ws.Description = v
	}
	if v, ok := fields["workspace_image"].(string); ok {
		ws.WorkspaceImage = v
	}
	ws.UpdatedAt = time.Now().UTC()
	f.byID[id] = ws
	return ws, nil
}

func (f *fakeWorkspaces) Delete(ctx context.Context, id string) error {
	ws, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	ws.Deleted = true
	f.byID[id] = ws
	return nil
}

func (f *fakeWorkspaces) NameAvailable(ctx context.Context, name string) error {
	for _, ws := range f.byID {
		if !ws.Deleted && ws.WorkspaceName == name {
			return domerrors.New(domerrors.NotAvailable, domerrors.LocationBody, "the workspace %s is not available", name)
		}
	}
	return nil
}

func TestCreateWorkspaceAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeWorkspaces())

	ws, err := svc.Create(context.Background(), CreateInput{WorkspaceName: "team-rocket"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ws.WorkspaceImage != domain.DefaultWorkspaceImage {
		t.Errorf("image = %q, want placeholder", ws.WorkspaceImage)
	}
	if ws.ID == "" {
		t.Error("id must be assigned")
	}
}

func TestCreateWorkspaceDuplicateName(t *testing.T) {
	svc := NewService(newFakeWorkspaces())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{WorkspaceName: "team-rocket"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, CreateInput{WorkspaceName: "team-rocket"})
	if domerrors.KindOf(err) != domerrors.NotAvailable {
		t.Errorf("kind = %v, want NotAvailable", domerrors.KindOf(err))
	}
}

func TestPatchWorkspaceRechecksNameGuard(t *testing.T) {
	repo := newFakeWorkspaces()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInput{WorkspaceName: "alpha"})
	if err != nil {
		t.Fatalf("create alpha: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{WorkspaceName: "beta"}); err != nil {
		t.Fatalf("create beta: %v", err)
	}

	_, err = svc.Patch(ctx, first.ID, map[string]any{"workspace_name": "beta"})
	if domerrors.KindOf(err) != domerrors.NotAvailable {
		t.Errorf("kind = %v, want NotAvailable", domerrors.KindOf(err))
	}

	updated, err := svc.Patch(ctx, first.ID, map[string]any{"description": "rebranding soon"})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated.Description != "rebranding soon" {
		t.Errorf("description = %q", updated.Description)
	}
}

func TestPatchEmptyPartialOnlyBumpsUpdatedAt(t *testing.T) {
	repo := newFakeWorkspaces()
	svc := NewService(repo)
	ctx := context.Background()

	ws, err := svc.Create(ctx, CreateInput{WorkspaceName: "alpha", Description: "original"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before, _ := repo.GetByID(ctx, ws.ID)
	time.Sleep(time.Millisecond)

	updated, err := svc.Patch(ctx, ws.ID, map[string]any{})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated.WorkspaceName != before.WorkspaceName || updated.Description != before.Description || updated.WorkspaceImage != before.WorkspaceImage {
		t.Error("empty patch must not change any field")
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Error("updated_at must strictly increase")
	}
}

func TestDeleteWorkspace(t *testing.T) {
	svc := NewService(newFakeWorkspaces())
	ctx := context.Background()

	ws, err := svc.Create(ctx, CreateInput{WorkspaceName: "alpha"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, ws.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, ws.ID); domerrors.KindOf(err) != domerrors.NotFound {
		t.Errorf("kind = %v, want NotFound", domerrors.KindOf(err))
	}
	if err := svc.Delete(ctx, "missing"); domerrors.KindOf(err) != domerrors.NotFound {
		t.Errorf("delete missing kind = %v, want NotFound", domerrors.KindOf(err))
	}
}
