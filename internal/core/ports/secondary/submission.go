package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/domain"
)

type SubmissionRepository interface {
	SaveSubmission(ctx context.Context, submission *domain.Submission) error

	ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error)

	ListByUserAndProblem(ctx context.Context, userID string, problemID uuid.UUID) ([]*domain.Submission, error)

	CountByProblem(ctx context.Context, problemID uuid.UUID) (int, error)
}
