package submission

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// ISubmissionService reads recorded learner runs.
type ISubmissionService interface {
	// ListSubmissions lists a user's submissions, optionally for one problem
	ListSubmissions(ctx context.Context, userID string, problemID *uuid.UUID) ([]*domain.Submission, error)

	// CountSubmissions counts all submissions made against a problem
	CountSubmissions(ctx context.Context, problemID uuid.UUID) (int, error)
}
