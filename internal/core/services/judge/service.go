package judge

import (
	"context"
	"time"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// PollOptions bounds a polling loop.
type PollOptions struct {
	Interval time.Duration
	MaxWait  time.Duration
}

// IJudgeService drives one batch of execution units through the remote judge.
type IJudgeService interface {
	// Submit hands all units to the remote judge in one call
	Submit(ctx context.Context, units []domain.ExecutionUnit) ([]domain.Token, error)

	// Poll waits until every token is terminal or opts.MaxWait elapses
	Poll(ctx context.Context, tokens []domain.Token, opts PollOptions) ([]domain.UnitResult, error)

	// Execute submits, polls and reduces a batch
	Execute(ctx context.Context, units []domain.ExecutionUnit, mode domain.CompareMode) (*domain.BatchVerdict, error)
}
