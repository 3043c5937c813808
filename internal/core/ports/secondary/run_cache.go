package secondary

import (
	"context"
	"time"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// RunCache stores verdicts of learner runs keyed by a digest of the run input.
type RunCache interface {
	// GetVerdict returns nil without error on a miss
	GetVerdict(ctx context.Context, key string) (*domain.BatchVerdict, error)
	SaveVerdict(ctx context.Context, key string, verdict *domain.BatchVerdict, ttl time.Duration) error
}
