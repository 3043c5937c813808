package problem

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// IProblemService manages authored problems. Writes that touch reference
// solutions or testcases are verified against the judge first.
type IProblemService interface {
	// CreateProblem verifies and stores a new problem
	CreateProblem(ctx context.Context, userID string, problem *domain.Problem) (*domain.Problem, error)

	// UpdateProblem applies a patch, re-verifying when judging inputs change
	UpdateProblem(ctx context.Context, id uuid.UUID, patch domain.ProblemPatch) (*domain.Problem, error)

	GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error)

	ListProblems(ctx context.Context, limit, offset int) ([]*domain.Problem, error)

	DeleteProblem(ctx context.Context, id uuid.UUID) error
}
