package queue

import (
	"context"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
)

// NoopEnqueuer is a no-op enqueuer when Redis/Asynq is not configured.
type NoopEnqueuer struct{}

func NewNoopEnqueuer() *NoopEnqueuer {
	return &NoopEnqueuer{}
}

func (q *NoopEnqueuer) EnqueuePasswordResetEmail(ctx context.Context, userID, email, token, fullName string) error {
	return nil
}

func (q *NoopEnqueuer) EnqueueUserVerificationEmail(ctx context.Context, userID, email, token, fullName string) error {
	return nil
}

var _ ports.TaskEnqueuer = (*NoopEnqueuer)(nil)
