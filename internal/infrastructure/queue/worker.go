package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// EmailSender delivers the rendered emails the worker processes.
type EmailSender interface {
	SendPasswordReset(userID, to, token, fullName string) error
	SendUserVerification(userID, to, token, fullName string) error
}

// Worker runs Asynq task handlers for outbound email.
type Worker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	sender EmailSender
	log    zerolog.Logger
}

// NewWorker creates an Asynq server and registers handlers. Call Run() to start.
func NewWorker(redisOpt asynq.RedisClientOpt, sender EmailSender, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, sender: sender, log: log}
	mux.HandleFunc(TypeSendPasswordReset, w.handlePasswordReset)
	mux.HandleFunc(TypeSendUserVerification, w.handleUserVerification)
	return w
}

func (w *Worker) handlePasswordReset(ctx context.Context, t *asynq.Task) error {
	var p emailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.log.Error().Err(err).Msg("password reset task payload invalid")
		return err
	}
	if w.sender == nil {
		w.log.Info().Str("email", p.Email).Msg("password reset email (log only; configure SMTP for real email)")
		return nil
	}
	return w.sender.SendPasswordReset(p.UserID, p.Email, p.Token, p.FullName)
}

func (w *Worker) handleUserVerification(ctx context.Context, t *asynq.Task) error {
	var p emailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.log.Error().Err(err).Msg("user verification task payload invalid")
		return err
	}
	if w.sender == nil {
		w.log.Info().Str("email", p.Email).Msg("user verification email (log only; configure SMTP for real email)")
		return nil
	}
	return w.sender.SendUserVerification(p.UserID, p.Email, p.Token, p.FullName)
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

// Shutdown stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
