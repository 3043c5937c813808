package verification

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"gitlab.com/dsa-judge.net/internal/config"
	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/services/judge"
	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

var _ IVerificationService = (*VerificationService)(nil)

// VerificationService implements the IVerificationService interface
type VerificationService struct {
	judge  judge.IJudgeService
	logger primary.Logger
	cfg    *config.VerifyConfig
}

// NewVerificationService creates a new verification service
func NewVerificationService(judgeSvc judge.IJudgeService, logger primary.Logger, cfg *config.VerifyConfig) *VerificationService {
	if cfg == nil {
		cfg = &config.VerifyConfig{}
	}
	return &VerificationService{
		judge:  judgeSvc,
		logger: logger,
		cfg:    cfg,
	}
}

type languagePlan struct {
	track domain.LanguageTrack
	units []domain.ExecutionUnit
}

// Verify resolves every language up front, then judges one batch per language.
func (s *VerificationService) Verify(ctx context.Context, solutions map[domain.LanguageTrack]string, testcases []domain.TestCase) error {
	if len(solutions) == 0 {
		return fmt.Errorf("%w: no reference solutions", errs.ErrInvalidProblem)
	}

	plans, err := s.plan(solutions, testcases)
	if err != nil {
		s.logger.Error("Failed to resolve reference solution languages", "error", err)
		return err
	}

	if len(testcases) == 0 {
		return &domain.VerificationError{Language: plans[0].track}
	}

	s.logger.Info("Verifying reference solutions",
		"languages", len(plans),
		"testcases", len(testcases),
		"sequential", s.cfg.Sequential)

	if s.cfg.Sequential {
		return s.verifySequential(ctx, plans)
	}
	return s.verifyConcurrent(ctx, plans)
}

func (s *VerificationService) plan(solutions map[domain.LanguageTrack]string, testcases []domain.TestCase) ([]languagePlan, error) {
	plans := make([]languagePlan, 0, len(solutions))
	for track, source := range solutions {
		code, err := judge.ResolveLanguage(string(track))
		if err != nil {
			return nil, err
		}
		plans = append(plans, languagePlan{
			track: domain.NormalizeLanguageTrack(string(track)),
			units: domain.Units(source, code, testcases),
		})
	}

	sort.Slice(plans, func(i, j int) bool { return plans[i].track < plans[j].track })
	return plans, nil
}

// verifySequential stops at the first failing language.
func (s *VerificationService) verifySequential(ctx context.Context, plans []languagePlan) error {
	for _, plan := range plans {
		if err := s.verifyLanguage(ctx, plan); err != nil {
			return err
		}
	}
	return nil
}

// verifyConcurrent judges languages in parallel. Every started batch runs to
// completion; the first error reported wins.
func (s *VerificationService) verifyConcurrent(ctx context.Context, plans []languagePlan) error {
	var g errgroup.Group
	if s.cfg.MaxParallelLanguages > 0 {
		g.SetLimit(s.cfg.MaxParallelLanguages)
	}

	for _, plan := range plans {
		g.Go(func() error {
			return s.verifyLanguage(ctx, plan)
		})
	}

	return g.Wait()
}

func (s *VerificationService) verifyLanguage(ctx context.Context, plan languagePlan) error {
	verdict, err := s.judge.Execute(ctx, plan.units, domain.CompareStatus)
	if err != nil {
		s.logger.Error("Failed to judge reference solution", "language", plan.track, "error", err)
		return err
	}

	if verdict.Accepted() {
		s.logger.Info("Reference solution accepted", "language", plan.track, "testcases", verdict.TotalCount)
		return nil
	}

	verr := &domain.VerificationError{Language: plan.track, Verdict: verdict}
	if failure := verdict.FirstFailure(); failure != nil {
		verr.TestcaseIndex = failure.Index
		verr.Status = failure.Status
	}

	s.logger.Warn("Reference solution rejected",
		"language", plan.track,
		"testcase", verr.TestcaseIndex,
		"status", verr.Status)
	return verr
}
