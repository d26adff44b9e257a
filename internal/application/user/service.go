package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/rs/zerolog"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	"github.com/FabianaArciniegas/joker-task/internal/domain"
)

// Service covers the user resource: registration with uniqueness guards and
// the generic read/patch/delete operations.
type Service struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	enqueuer ports.TaskEnqueuer
}

func NewService(users ports.UserRepository, hasher ports.PasswordHasher, enqueuer ports.TaskEnqueuer) *Service {
	return &Service{users: users, hasher: hasher, enqueuer: enqueuer}
}

type RegisterInput struct {
	Username string
	FullName string
	Email    string
	Password string
}

// Register creates an unverified user and queues the verification email.
// Both guards run immediately before the write; they are advisory, not
// transactional.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := s.users.UsernameAvailable(ctx, input.Username); err != nil {
		return nil, err
	}
	if err := s.users.EmailAvailable(ctx, input.Email); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	verifyToken := hex.EncodeToString(raw)

	user := domain.NewUser(input.Username, input.FullName, input.Email, hash, verifyToken)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.enqueuer.EnqueueUserVerificationEmail(ctx, user.ID, user.Email, verifyToken, user.FullName); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("user_id", user.ID).Msg("enqueue verification email failed")
	}
	return &user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

// Patch applies a sparse update. Credential fields never travel this path;
// the handler only forwards profile fields.
func (s *Service) Patch(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	if username, ok := fields["username"].(string); ok {
		if err := s.users.UsernameAvailable(ctx, username); err != nil {
			return nil, err
		}
	}
	if email, ok := fields["email"].(string); ok {
		if err := s.users.EmailAvailable(ctx, email); err != nil {
			return nil, err
		}
	}
	user, err := s.users.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
