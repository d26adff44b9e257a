package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/FabianaArciniegas/joker-task/internal/domain"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

// UserRepository implements ports.UserRepository: the shared document
// operations plus identifier lookup and the uniqueness guards.
type UserRepository struct {
	*Repository[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Repository: NewRepository[domain.User](db)}
}

func identifierFilter(usernameOrEmail string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"username": usernameOrEmail},
		bson.M{"email": usernameOrEmail},
	}}
}

// GetByIdentifier resolves a username or email to a live user. Absence is
// an invalid-credentials error, not a not-found, so login flows never
// distinguish unknown identifiers from bad passwords.
func (r *UserRepository) GetByIdentifier(ctx context.Context, usernameOrEmail string) (domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, notDeleted(identifierFilter(usernameOrEmail))).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return user, domerrors.New(domerrors.InvalidCredentials, domerrors.LocationBody, "invalid credentials")
	}
	if err != nil {
		return user, err
	}
	return user, nil
}

// ConfirmIdentifierExists fails when no live user matches the identifier.
// Advisory only: a concurrent delete can still race the caller's write.
func (r *UserRepository) ConfirmIdentifierExists(ctx context.Context, usernameOrEmail string) error {
	n, err := r.countLive(ctx, identifierFilter(usernameOrEmail))
	if err != nil {
		return err
	}
	if n == 0 {
		return domerrors.New(domerrors.InvalidCredentials, domerrors.LocationBody, "invalid credentials")
	}
	return nil
}

// UsernameAvailable fails when a live user already holds the username.
func (r *UserRepository) UsernameAvailable(ctx context.Context, username string) error {
	n, err := r.countLive(ctx, bson.M{"username": username})
	if err != nil {
		return err
	}
	if n > 0 {
		return domerrors.New(domerrors.NotAvailable, domerrors.LocationBody, "the user %s is not available, it already exists", username)
	}
	return nil
}

// EmailAvailable fails when a live user already holds the email.
func (r *UserRepository) EmailAvailable(ctx context.Context, email string) error {
	n, err := r.countLive(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if n > 0 {
		return domerrors.New(domerrors.NotAvailable, domerrors.LocationBody, "the email %s is not available, it already exists", email)
	}
	return nil
}
