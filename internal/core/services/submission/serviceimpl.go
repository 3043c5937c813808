package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/domain"
)

var _ ISubmissionService = (*SubmissionService)(nil)

type SubmissionService struct {
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger
}

func NewSubmissionService(submissionRepo secondary.SubmissionRepository, logger primary.Logger) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, userID string, problemID *uuid.UUID) ([]*domain.Submission, error) {
	var (
		submissions []*domain.Submission
		err         error
	)
	if problemID != nil {
		submissions, err = s.submissionRepo.ListByUserAndProblem(ctx, userID, *problemID)
	} else {
		submissions, err = s.submissionRepo.ListByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("Failed to list submissions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	if submissions == nil {
		submissions = []*domain.Submission{}
	}
	return submissions, nil
}

func (s *SubmissionService) CountSubmissions(ctx context.Context, problemID uuid.UUID) (int, error) {
	count, err := s.submissionRepo.CountByProblem(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to count submissions", "problemId", problemID, "error", err)
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}
