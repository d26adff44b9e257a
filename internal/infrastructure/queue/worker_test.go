package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type capturedSend struct {
	kind, userID, to, token, fullName string
}

type fakeSender struct {
	sent []capturedSend
	err  error
}

func (f *fakeSender) SendPasswordReset(userID, to, token, fullName string) error {
	f.sent = append(f.sent, capturedSend{"reset", userID, to, token, fullName})
	return f.err
}

func (f *fakeSender) SendUserVerification(userID, to, token, fullName string) error {
	f.sent = append(f.sent, capturedSend{"verify", userID, to, token, fullName})
	return f.err
}

func taskWith(t *testing.T, taskType string, p emailPayload) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return asynq.NewTask(taskType, body)
}

func TestWorkerDispatchesToSender(t *testing.T) {
	sender := &fakeSender{}
	w := &Worker{sender: sender, log: zerolog.Nop()}
	ctx := context.Background()

	p := emailPayload{UserID: "u1", Email: "a@b.c", Token: "tok", FullName: "Ada"}
	if err := w.handlePasswordReset(ctx, taskWith(t, TypeSendPasswordReset, p)); err != nil {
		t.Fatalf("handlePasswordReset: %v", err)
	}
	if err := w.handleUserVerification(ctx, taskWith(t, TypeSendUserVerification, p)); err != nil {
		t.Fatalf("handleUserVerification: %v", err)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("want 2 sends, got %d", len(sender.sent))
	}
	if sender.sent[0].kind != "reset" || sender.sent[1].kind != "verify" {
		t.Errorf("unexpected dispatch order: %+v", sender.sent)
	}
	if sender.sent[0].to != "a@b.c" || sender.sent[0].token != "tok" {
		t.Errorf("payload fields lost: %+v", sender.sent[0])
	}
}

func TestWorkerRejectsMalformedPayload(t *testing.T) {
	w := &Worker{sender: &fakeSender{}, log: zerolog.Nop()}
	task := asynq.NewTask(TypeSendPasswordReset, []byte("not json"))
	if err := w.handlePasswordReset(context.Background(), task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestWorkerWithoutSenderLogsOnly(t *testing.T) {
	w := &Worker{log: zerolog.Nop()}
	p := emailPayload{UserID: "u1", Email: "a@b.c"}
	if err := w.handlePasswordReset(context.Background(), taskWith(t, TypeSendPasswordReset, p)); err != nil {
		t.Fatalf("nil sender should not error: %v", err)
	}
}
