package run

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/dsa-judge.net/internal/config"
	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/core/services/judge"
	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

var _ IRunService = (*RunService)(nil)

const cacheKeyPrefix = "run:verdict:"

// RunService implements the IRunService interface
type RunService struct {
	judge          judge.IJudgeService
	problemRepo    secondary.ProblemRepository
	submissionRepo secondary.SubmissionRepository
	cache          secondary.RunCache
	logger         primary.Logger
	cfg            *config.RunConfig
}

// NewRunService creates a new run service. cache may be nil.
func NewRunService(
	judgeSvc judge.IJudgeService,
	problemRepo secondary.ProblemRepository,
	submissionRepo secondary.SubmissionRepository,
	cache secondary.RunCache,
	logger primary.Logger,
	cfg *config.RunConfig,
) *RunService {
	return &RunService{
		judge:          judgeSvc,
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		cache:          cache,
		logger:         logger,
		cfg:            cfg,
	}
}

// Run executes the source once per testcase and records a submission when
// the run targets a problem.
func (s *RunService) Run(ctx context.Context, req Request) (*domain.BatchVerdict, error) {
	code, err := judge.ResolveLanguage(req.Language)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.SourceCode) == "" {
		return nil, fmt.Errorf("%w: source code is required", errs.ErrInvalidRun)
	}

	testcases := req.TestCases
	if len(testcases) == 0 && req.ProblemID != nil {
		problem, err := s.problemRepo.GetProblem(ctx, *req.ProblemID)
		if err != nil {
			s.logger.Error("Failed to get problem", "problemId", *req.ProblemID, "error", err)
			return nil, fmt.Errorf("failed to get problem: %w", err)
		}
		if problem == nil {
			return nil, errs.ErrProblemNotFound
		}
		testcases = problem.TestCases
	}

	if len(testcases) == 0 {
		return nil, fmt.Errorf("%w: at least one testcase is required", errs.ErrInvalidRun)
	}
	if s.cfg.MaxTestCases > 0 && len(testcases) > s.cfg.MaxTestCases {
		return nil, fmt.Errorf("%w: %d testcases exceeds the limit of %d", errs.ErrInvalidRun, len(testcases), s.cfg.MaxTestCases)
	}

	key := cacheKey(code, req.SourceCode, testcases)
	verdict := s.cachedVerdict(ctx, key)
	if verdict == nil {
		verdict, err = s.judge.Execute(ctx, domain.Units(req.SourceCode, code, testcases), domain.CompareTrimmedOutput)
		if err != nil {
			return nil, err
		}
		s.cacheVerdict(ctx, key, verdict)
	}

	if req.ProblemID != nil {
		submission := domain.NewSubmission(req.UserID, *req.ProblemID, domain.NormalizeLanguageTrack(req.Language), req.SourceCode)
		if err := fillSubmission(submission, testcases, verdict); err != nil {
			return nil, err
		}
		if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
			s.logger.Error("Failed to save submission", "submissionId", submission.ID, "error", err)
			return nil, fmt.Errorf("failed to save submission: %w", err)
		}
		s.logger.Info("Submission recorded",
			"submissionId", submission.ID,
			"problemId", submission.ProblemID,
			"status", submission.Status)
	}

	return verdict, nil
}

func (s *RunService) cachedVerdict(ctx context.Context, key string) *domain.BatchVerdict {
	if s.cache == nil {
		return nil
	}
	verdict, err := s.cache.GetVerdict(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to read run cache", "error", err)
		return nil
	}
	if verdict != nil {
		s.logger.Debug("Run cache hit", "key", key)
	}
	return verdict
}

// cacheVerdict keeps only complete verdicts; a poll timeout may not repeat.
func (s *RunService) cacheVerdict(ctx context.Context, key string, verdict *domain.BatchVerdict) {
	if s.cache == nil || verdict.TimedOutCount() > 0 {
		return
	}
	if err := s.cache.SaveVerdict(ctx, key, verdict, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("Failed to write run cache", "error", err)
	}
}

func cacheKey(code domain.LanguageCode, source string, testcases []domain.TestCase) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(int(code))))
	h.Write([]byte{0})
	h.Write([]byte(source))
	for _, tc := range testcases {
		h.Write([]byte{0})
		h.Write([]byte(tc.Input))
		h.Write([]byte{0})
		h.Write([]byte(tc.Output))
	}
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

func fillSubmission(submission *domain.Submission, testcases []domain.TestCase, verdict *domain.BatchVerdict) error {
	stdin := make([]string, len(testcases))
	for i, tc := range testcases {
		stdin[i] = tc.Input
	}

	stdout := make([]string, len(verdict.Units))
	times := make([]*float64, len(verdict.Units))
	memory := make([]*float64, len(verdict.Units))
	var stderr []string
	for i, u := range verdict.Units {
		if u.Stdout != nil {
			stdout[i] = *u.Stdout
		}
		times[i] = u.Time
		memory[i] = u.Memory
		if u.Stderr != nil && *u.Stderr != "" {
			stderr = append(stderr, *u.Stderr)
		}
		if submission.CompileOutput == nil && u.CompileOutput != nil && *u.CompileOutput != "" {
			submission.CompileOutput = u.CompileOutput
		}
	}
	if len(stderr) > 0 {
		joined := strings.Join(stderr, "\n")
		submission.Stderr = &joined
	}

	var err error
	if submission.Stdin, err = encodeJSON(stdin); err != nil {
		return err
	}
	if submission.Stdout, err = encodeJSON(stdout); err != nil {
		return err
	}
	if submission.Time, err = encodeJSON(times); err != nil {
		return err
	}
	if submission.Memory, err = encodeJSON(memory); err != nil {
		return err
	}

	submission.Status = verdict.OverallStatus
	submission.PassedCount = verdict.PassedCount
	submission.TotalCount = verdict.TotalCount
	return nil
}

func encodeJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode submission field: %w", err)
	}
	return string(data), nil
}
