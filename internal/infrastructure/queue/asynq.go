// Package queue enqueues and processes background email tasks via Asynq.
package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
)

const (
	TypeSendPasswordReset    = "email:password_reset"
	TypeSendUserVerification = "email:user_verification"
)

// emailPayload is the JSON body shared by both email task types.
type emailPayload struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	FullName string `json:"full_name"`
}

type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) *TaskEnqueuer {
	return &TaskEnqueuer{client: asynq.NewClient(redisOpt), log: log}
}

func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

func (q *TaskEnqueuer) EnqueuePasswordResetEmail(ctx context.Context, userID, email, token, fullName string) error {
	return q.enqueue(ctx, TypeSendPasswordReset, emailPayload{
		UserID: userID, Email: email, Token: token, FullName: fullName,
	})
}

func (q *TaskEnqueuer) EnqueueUserVerificationEmail(ctx context.Context, userID, email, token, fullName string) error {
	return q.enqueue(ctx, TypeSendUserVerification, emailPayload{
		UserID: userID, Email: email, Token: token, FullName: fullName,
	})
}

func (q *TaskEnqueuer) enqueue(ctx context.Context, taskType string, p emailPayload) error {
	payload, _ := json.Marshal(p)
	_, err := q.client.EnqueueContext(ctx, asynq.NewTask(taskType, payload))
	if err != nil {
		q.log.Warn().Err(err).Str("task", taskType).Str("email", p.Email).Msg("enqueue email task failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
