package secondary

import (
	"context"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// JudgeClient is the contract of the remote judging backend.
type JudgeClient interface {
	// SubmitBatch submits all units in one call and returns one token per
	// unit, in the same order.
	SubmitBatch(ctx context.Context, units []domain.ExecutionUnit) ([]domain.Token, error)

	// GetBatch returns the current state of the given tokens. Results may
	// come back in any order and may omit tokens the judge does not know yet.
	GetBatch(ctx context.Context, tokens []domain.Token) ([]domain.UnitResult, error)
}

// JudgeMetrics observes judging rounds.
type JudgeMetrics interface {
	ObserveRound(outcome string, seconds float64)
	AddStatusQueries(n int)
	AddTimedOutUnits(n int)
}
