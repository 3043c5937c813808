package verification

import (
	"context"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// IVerificationService checks reference solutions before a problem is stored.
type IVerificationService interface {
	// Verify runs every reference solution against every testcase. It returns
	// a *domain.VerificationError for the first failing language, or an
	// infrastructure error that aborted the pipeline.
	Verify(ctx context.Context, solutions map[domain.LanguageTrack]string, testcases []domain.TestCase) error
}
