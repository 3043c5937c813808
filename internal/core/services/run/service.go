package run

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// Request is one learner run.
type Request struct {
	UserID     string
	ProblemID  *uuid.UUID
	Language   string
	SourceCode string
	// TestCases falls back to the problem's testcases when empty.
	TestCases []domain.TestCase
}

// IRunService judges learner code against testcases by trimmed stdout.
type IRunService interface {
	Run(ctx context.Context, req Request) (*domain.BatchVerdict, error)
}
