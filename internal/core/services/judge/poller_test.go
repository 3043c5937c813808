package judge

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitlab.com/dsa-judge.net/internal/domain"
)

func fastPoll() PollOptions {
	return PollOptions{Interval: time.Millisecond, MaxWait: 2 * time.Second}
}

func TestPollPreservesSubmissionOrder(t *testing.T) {
	client := newFakeClient()
	client.finish("c", 1, accepted("3"))
	client.finish("a", 2, accepted("1"))
	client.finish("b", 3, accepted("2"))
	svc := newTestService(t, client)

	results, err := svc.Poll(context.Background(), []domain.Token{"a", "b", "c"}, fastPoll())
	if err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}

	want := []domain.Token{"a", "b", "c"}
	for i, token := range want {
		if results[i].Token != token {
			t.Fatalf("results[%d].Token = %q, want %q", i, results[i].Token, token)
		}
		if results[i].Status != domain.StatusAccepted {
			t.Fatalf("results[%d].Status = %s, want ACCEPTED", i, results[i].Status)
		}
	}
}

func TestPollDoesNotRequeryTerminalTokens(t *testing.T) {
	client := newFakeClient()
	client.finish("c", 1, accepted(""))
	client.finish("a", 2, accepted(""))
	client.finish("b", 3, accepted(""))
	svc := newTestService(t, client)

	if _, err := svc.Poll(context.Background(), []domain.Token{"a", "b", "c"}, fastPoll()); err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}

	wantRounds := [][]domain.Token{{"a", "b", "c"}, {"a", "b"}, {"b"}}
	if len(client.queried) != len(wantRounds) {
		t.Fatalf("queried %d rounds, want %d: %v", len(client.queried), len(wantRounds), client.queried)
	}
	for i, want := range wantRounds {
		got := client.queried[i]
		if len(got) != len(want) {
			t.Fatalf("round %d queried %v, want %v", i+1, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("round %d queried %v, want %v", i+1, got, want)
			}
		}
	}
}

func TestPollReportsTimeoutForNeverTerminalTokens(t *testing.T) {
	client := newFakeClient()
	client.finish("a", 1, accepted("ok"))
	svc := newTestService(t, client)

	results, err := svc.Poll(context.Background(), []domain.Token{"a", "stuck"}, PollOptions{
		Interval: 5 * time.Millisecond,
		MaxWait:  30 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}

	if results[0].Status != domain.StatusAccepted {
		t.Fatalf("results[0].Status = %s, want ACCEPTED", results[0].Status)
	}
	if results[1].Status != domain.StatusPollTimeout || results[1].Token != "stuck" {
		t.Fatalf("results[1] = %+v, want POLL_TIMEOUT for stuck", results[1])
	}
}

func TestPollRetriesFailedStatusQuery(t *testing.T) {
	client := newFakeClient()
	client.failRound[1] = errBoom
	client.finish("a", 1, accepted("ok"))
	svc := newTestService(t, client)

	results, err := svc.Poll(context.Background(), []domain.Token{"a"}, fastPoll())
	if err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}
	if results[0].Status != domain.StatusAccepted {
		t.Fatalf("Status = %s, want ACCEPTED after retry", results[0].Status)
	}
	if client.queryRounds() != 2 {
		t.Fatalf("rounds = %d, want 2", client.queryRounds())
	}
}

func TestPollStopsWithinOneIntervalOnCancel(t *testing.T) {
	client := newFakeClient()
	svc := newTestService(t, client)

	interval := 200 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	started := time.Now()
	_, err := svc.Poll(ctx, []domain.Token{"a"}, PollOptions{Interval: interval, MaxWait: 10 * time.Second})
	elapsed := time.Since(started)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if elapsed >= interval {
		t.Fatalf("Poll took %s after cancel, want less than one interval (%s)", elapsed, interval)
	}
	if rounds := client.queryRounds(); rounds != 1 {
		t.Fatalf("rounds = %d, want 1", rounds)
	}
}

func TestPollBoundsSlowStatusQueryByMaxWait(t *testing.T) {
	client := newFakeClient()
	client.queryDelay = 2 * time.Second
	client.finish("a", 1, accepted("ok"))
	svc := newTestService(t, client)

	maxWait := 100 * time.Millisecond
	started := time.Now()
	results, err := svc.Poll(context.Background(), []domain.Token{"a"}, PollOptions{Interval: 10 * time.Millisecond, MaxWait: maxWait})
	elapsed := time.Since(started)

	if err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}
	if results[0].Status != domain.StatusPollTimeout {
		t.Fatalf("Status = %s, want POLL_TIMEOUT", results[0].Status)
	}
	if elapsed > maxWait+500*time.Millisecond {
		t.Fatalf("Poll took %s, want about %s", elapsed, maxWait)
	}
}

func TestPollAppliesDefaults(t *testing.T) {
	opts := PollOptions{}.withDefaults()
	if opts.Interval != time.Second || opts.MaxWait != 30*time.Second {
		t.Fatalf("defaults = %+v, want 1s interval and 30s max wait", opts)
	}
}
