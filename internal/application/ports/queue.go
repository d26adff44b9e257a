package ports

import "context"

// TaskEnqueuer queues outbound emails for background delivery. Sending is
// fire-and-forget: enqueue errors are logged by callers, never surfaced to
// the requester.
type TaskEnqueuer interface {
	EnqueuePasswordResetEmail(ctx context.Context, userID, email, token, fullName string) error
	EnqueueUserVerificationEmail(ctx context.Context, userID, email, token, fullName string) error
}
