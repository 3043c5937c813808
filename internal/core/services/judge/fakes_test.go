package judge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"gitlab.com/dsa-judge.net/internal/adapter/logging"
	"gitlab.com/dsa-judge.net/internal/domain"
)

// fakeClient hands out tokens in order and reports each token terminal from
// a configured status query round onwards.
type fakeClient struct {
	mu sync.Mutex

	submitErr    error
	submitTokens []domain.Token
	submitted    [][]domain.ExecutionUnit

	readyAt   map[domain.Token]int // 0 means never terminal
	results   map[domain.Token]domain.UnitResult
	failRound map[int]error
	rounds    int
	queried   [][]domain.Token

	// queryDelay stalls every status query until it elapses or ctx is done
	queryDelay time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		readyAt:   map[domain.Token]int{},
		results:   map[domain.Token]domain.UnitResult{},
		failRound: map[int]error{},
	}
}

func (f *fakeClient) finish(token domain.Token, round int, result domain.UnitResult) {
	result.Token = token
	f.readyAt[token] = round
	f.results[token] = result
}

func (f *fakeClient) SubmitBatch(ctx context.Context, units []domain.ExecutionUnit) ([]domain.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, units)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitTokens, nil
}

func (f *fakeClient) GetBatch(ctx context.Context, tokens []domain.Token) ([]domain.UnitResult, error) {
	if f.queryDelay > 0 {
		select {
		case <-ctx.Done():
			f.mu.Lock()
			f.rounds++
			f.mu.Unlock()
			return nil, ctx.Err()
		case <-time.After(f.queryDelay):
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.rounds++
	f.queried = append(f.queried, append([]domain.Token(nil), tokens...))
	if err := f.failRound[f.rounds]; err != nil {
		return nil, err
	}

	// reverse order so callers cannot rely on the reply order
	out := make([]domain.UnitResult, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if at := f.readyAt[token]; at > 0 && f.rounds >= at {
			out = append(out, f.results[token])
			continue
		}
		out = append(out, domain.UnitResult{Token: token, Status: domain.StatusProcessing})
	}
	return out, nil
}

func (f *fakeClient) queryRounds() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rounds
}

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes []string
	queries  int
	timedOut int
}

func (m *fakeMetrics) ObserveRound(outcome string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *fakeMetrics) AddStatusQueries(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries += n
}

func (m *fakeMetrics) AddTimedOutUnits(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timedOut += n
}

func newTestService(t *testing.T, client *fakeClient, options ...JudgeServiceOption) *JudgeService {
	t.Helper()
	return NewJudgeService(client, logging.NewZapLoggerFrom(zaptest.NewLogger(t)), nil, options...)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func accepted(stdout string) domain.UnitResult {
	return domain.UnitResult{Status: domain.StatusAccepted, StatusLabel: "Accepted", Stdout: strPtr(stdout)}
}

var errBoom = errors.New("boom")
