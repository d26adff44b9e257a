package ports

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/domain"
)

// UserRepository defines persistence for users plus the pre-write
// uniqueness guards. Guards are advisory point lookups: concurrent
// requests can race between check and write.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Patch(ctx context.Context, id string, fields map[string]any) (domain.User, error)
	Delete(ctx context.Context, id string) error

	// GetByIdentifier resolves a username or an email to a live user.
	GetByIdentifier(ctx context.Context, usernameOrEmail string) (domain.User, error)
	// ConfirmIdentifierExists fails with the invalid-credentials kind when
	// no live user matches the identifier.
	ConfirmIdentifierExists(ctx context.Context, usernameOrEmail string) error
	// UsernameAvailable fails with the not-available kind on collision.
	UsernameAvailable(ctx context.Context, username string) error
	// EmailAvailable fails with the not-available kind on collision.
	EmailAvailable(ctx context.Context, email string) error
}

// WorkspaceRepository defines persistence for workspaces.
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace domain.Workspace) error
	GetByID(ctx context.Context, id string) (domain.Workspace, error)
	GetAll(ctx context.Context) ([]domain.Workspace, error)
	Patch(ctx context.Context, id string, fields map[string]any) (domain.Workspace, error)
	Delete(ctx context.Context, id string) error

	// NameAvailable fails with the not-available kind on collision.
	NameAvailable(ctx context.Context, workspaceName string) error
}
