package judge

import (
	"context"
	"errors"
	"testing"

	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

func TestSubmitReturnsTokensInOrder(t *testing.T) {
	client := newFakeClient()
	client.submitTokens = []domain.Token{"t1", "t2"}
	svc := newTestService(t, client)

	tokens, err := svc.Submit(context.Background(), make([]domain.ExecutionUnit, 2))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if tokens[0] != "t1" || tokens[1] != "t2" {
		t.Fatalf("tokens = %v, want [t1 t2]", tokens)
	}
	if len(client.submitted) != 1 {
		t.Fatalf("submit calls = %d, want 1", len(client.submitted))
	}
}

func TestSubmitFailures(t *testing.T) {
	tests := []struct {
		name   string
		tokens []domain.Token
		err    error
	}{
		{name: "transport error", err: errBoom},
		{name: "token count mismatch", tokens: []domain.Token{"t1"}},
		{name: "empty token", tokens: []domain.Token{"t1", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFakeClient()
			client.submitTokens = tt.tokens
			client.submitErr = tt.err
			svc := newTestService(t, client)

			_, err := svc.Submit(context.Background(), make([]domain.ExecutionUnit, 2))

			var unavailable *domain.RemoteUnavailableError
			if !errors.As(err, &unavailable) {
				t.Fatalf("err = %v, want RemoteUnavailableError", err)
			}
			if !unavailable.Retryable() {
				t.Fatal("RemoteUnavailableError must be retryable")
			}
			if !errors.Is(err, errs.ErrRemoteUnavailable) {
				t.Fatalf("err = %v, want wrapping ErrRemoteUnavailable", err)
			}
		})
	}
}

func TestSubmitReturnsContextError(t *testing.T) {
	client := newFakeClient()
	client.submitErr = context.Canceled
	svc := newTestService(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, make([]domain.ExecutionUnit, 1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if errors.Is(err, errs.ErrRemoteUnavailable) {
		t.Fatal("cancellation must not be reported as remote unavailability")
	}
}
