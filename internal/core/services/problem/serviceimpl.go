package problem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/core/services/verification"
	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

var _ IProblemService = (*ProblemService)(nil)

const maxListLimit = 100

// ProblemService implements the IProblemService interface
type ProblemService struct {
	problemRepo secondary.ProblemRepository
	verifier    verification.IVerificationService
	logger      primary.Logger
}

// NewProblemService creates a new problem service
func NewProblemService(
	problemRepo secondary.ProblemRepository,
	verifier verification.IVerificationService,
	logger primary.Logger,
) *ProblemService {
	return &ProblemService{
		problemRepo: problemRepo,
		verifier:    verifier,
		logger:      logger,
	}
}

// CreateProblem verifies every reference solution and only then stores the problem
func (s *ProblemService) CreateProblem(ctx context.Context, userID string, problem *domain.Problem) (*domain.Problem, error) {
	if err := validateProblem(problem); err != nil {
		return nil, err
	}

	if err := normalizeProblemTracks(problem); err != nil {
		return nil, err
	}

	s.logger.Info("Creating problem", "title", problem.Title, "languages", len(problem.ReferenceSolutions))

	if err := s.verifier.Verify(ctx, problem.ReferenceSolutions, problem.TestCases); err != nil {
		return nil, err
	}

	now := time.Now()
	problem.ID = uuid.New()
	problem.UserID = userID
	problem.CreatedAt = now
	problem.UpdatedAt = now

	if err := s.problemRepo.CreateProblem(ctx, problem); err != nil {
		s.logger.Error("Failed to save problem", "problemId", problem.ID, "error", err)
		return nil, fmt.Errorf("failed to save problem: %w", err)
	}

	s.logger.Info("Problem created", "problemId", problem.ID)
	return problem, nil
}

// UpdateProblem merges the patch into the stored problem
func (s *ProblemService) UpdateProblem(ctx context.Context, id uuid.UUID, patch domain.ProblemPatch) (*domain.Problem, error) {
	existing, err := s.GetProblem(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	patch.Apply(&updated)
	if err := normalizeProblemTracks(&updated); err != nil {
		return nil, err
	}

	if err := validateProblem(&updated); err != nil {
		return nil, err
	}

	if patch.TouchesJudging() {
		s.logger.Info("Re-verifying problem", "problemId", id)
		if err := s.verifier.Verify(ctx, updated.ReferenceSolutions, updated.TestCases); err != nil {
			return nil, err
		}
	}

	updated.UpdatedAt = time.Now()
	if err := s.problemRepo.UpdateProblem(ctx, &updated); err != nil {
		s.logger.Error("Failed to update problem", "problemId", id, "error", err)
		return nil, fmt.Errorf("failed to update problem: %w", err)
	}

	s.logger.Info("Problem updated", "problemId", id)
	return &updated, nil
}

// GetProblem retrieves a problem by ID
func (s *ProblemService) GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	problem, err := s.problemRepo.GetProblem(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get problem", "problemId", id, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	if problem == nil {
		return nil, errs.ErrProblemNotFound
	}

	return problem, nil
}

func (s *ProblemService) ListProblems(ctx context.Context, limit, offset int) ([]*domain.Problem, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	problems, err := s.problemRepo.ListProblems(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	return problems, nil
}

// DeleteProblem removes a problem
func (s *ProblemService) DeleteProblem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProblem(ctx, id); err != nil {
		return err
	}

	if err := s.problemRepo.DeleteProblem(ctx, id); err != nil {
		s.logger.Error("Failed to delete problem", "problemId", id, "error", err)
		return fmt.Errorf("failed to delete problem: %w", err)
	}

	s.logger.Info("Problem deleted", "problemId", id)
	return nil
}

func validateProblem(problem *domain.Problem) error {
	if problem == nil {
		return fmt.Errorf("%w: empty body", errs.ErrInvalidProblem)
	}
	if strings.TrimSpace(problem.Title) == "" {
		return fmt.Errorf("%w: title is required", errs.ErrInvalidProblem)
	}
	if len(problem.ReferenceSolutions) == 0 {
		return fmt.Errorf("%w: at least one reference solution is required", errs.ErrInvalidProblem)
	}
	return nil
}

func normalizeProblemTracks(problem *domain.Problem) error {
	var err error
	if problem.ReferenceSolutions, err = normalizeTracks("referenceSolutions", problem.ReferenceSolutions); err != nil {
		return err
	}
	if problem.CodeSnippets, err = normalizeTracks("codeSnippets", problem.CodeSnippets); err != nil {
		return err
	}
	if problem.Examples, err = normalizeTracks("examples", problem.Examples); err != nil {
		return err
	}
	return nil
}

// normalizeTracks upper-cases language keys. Two keys naming the same
// language are rejected.
func normalizeTracks[V any](field string, in map[domain.LanguageTrack]V) (map[domain.LanguageTrack]V, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[domain.LanguageTrack]V, len(in))
	for track, value := range in {
		key := domain.NormalizeLanguageTrack(string(track))
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: %s lists language %s more than once", errs.ErrInvalidProblem, field, key)
		}
		out[key] = value
	}
	return out, nil
}
