package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/FabianaArciniegas/joker-task/internal/domain"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

// WorkspaceRepository implements ports.WorkspaceRepository.
type WorkspaceRepository struct {
	*Repository[domain.Workspace]
}

func NewWorkspaceRepository(db *mongo.Database) *WorkspaceRepository {
	return &WorkspaceRepository{Repository: NewRepository[domain.Workspace](db)}
}

// NameAvailable fails when a live workspace already holds the name.
func (r *WorkspaceRepository) NameAvailable(ctx context.Context, workspaceName string) error {
	n, err := r.countLive(ctx, bson.M{"workspace_name": workspaceName})
	if err != nil {
		return err
	}
	if n > 0 {
		return domerrors.New(domerrors.NotAvailable, domerrors.LocationBody, "the workspace %s is not available, it already exists", workspaceName)
	}
	return nil
}
