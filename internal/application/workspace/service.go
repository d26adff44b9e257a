package workspace

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	"github.com/FabianaArciniegas/joker-task/internal/domain"
)

// Service covers the workspace resource.
type Service struct {
	workspaces ports.WorkspaceRepository
}

func NewService(workspaces ports.WorkspaceRepository) *Service {
	return &Service{workspaces: workspaces}
}

type CreateInput struct {
	WorkspaceName  string
	Description    string
	WorkspaceImage string
}

// Create checks the name guard and writes the workspace.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Workspace, error) {
	if err := s.workspaces.NameAvailable(ctx, input.WorkspaceName); err != nil {
		return nil, err
	}
	ws := domain.NewWorkspace(input.WorkspaceName, input.Description, input.WorkspaceImage)
	if err := s.workspaces.Create(ctx, ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	ws, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Workspace, error) {
	return s.workspaces.GetAll(ctx)
}

// Patch re-checks the name guard when the name changes.
func (s *Service) Patch(ctx context.Context, id string, fields map[string]any) (*domain.Workspace, error) {
	if name, ok := fields["workspace_name"].(string); ok {
		if err := s.workspaces.NameAvailable(ctx, name); err != nil {
			return nil, err
		}
	}
	ws, err := s.workspaces.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.workspaces.Delete(ctx, id)
}
