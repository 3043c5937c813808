package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/domain"
)

type ProblemRepository interface {
	// CreateProblem stores a verified problem
	CreateProblem(ctx context.Context, problem *domain.Problem) error

	// UpdateProblem overwrites a verified problem
	UpdateProblem(ctx context.Context, problem *domain.Problem) error

	// GetProblem retrieves a problem by ID, nil when not found
	GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error)

	ListProblems(ctx context.Context, limit, offset int) ([]*domain.Problem, error)

	DeleteProblem(ctx context.Context, id uuid.UUID) error
}
