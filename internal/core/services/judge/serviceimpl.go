package judge

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/config"
	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/domain"
)

var _ IJudgeService = (*JudgeService)(nil)

// RoundState is the lifecycle of one batch.
type RoundState string

const (
	RoundSubmitted   RoundState = "SUBMITTED"
	RoundPolling     RoundState = "POLLING"
	RoundAllTerminal RoundState = "ALL_TERMINAL"
	RoundTimedOut    RoundState = "TIMED_OUT"
	RoundReduced     RoundState = "REDUCED"
)

// JudgeService implements the IJudgeService interface
type JudgeService struct {
	client   secondary.JudgeClient
	logger   primary.Logger
	metrics  secondary.JudgeMetrics
	pollOpts PollOptions
}

// JudgeServiceOption configures a JudgeService
type JudgeServiceOption func(*JudgeService)

// WithMetrics records round outcomes and poll traffic
func WithMetrics(metrics secondary.JudgeMetrics) JudgeServiceOption {
	return func(s *JudgeService) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithPollOptions overrides the poll interval and max wait from config
func WithPollOptions(opts PollOptions) JudgeServiceOption {
	return func(s *JudgeService) {
		s.pollOpts = opts
	}
}

// NewJudgeService creates a new judge service
func NewJudgeService(
	client secondary.JudgeClient,
	logger primary.Logger,
	cfg *config.JudgeConfig,
	options ...JudgeServiceOption,
) *JudgeService {
	s := &JudgeService{
		client:  client,
		logger:  logger,
		metrics: nopMetrics{},
	}
	if cfg != nil {
		s.pollOpts = PollOptions{Interval: cfg.PollInterval, MaxWait: cfg.MaxWait}
	}

	for _, option := range options {
		option(s)
	}
	s.pollOpts = s.pollOpts.withDefaults()

	return s
}

// Execute runs one judging round: SUBMITTED, POLLING, then ALL_TERMINAL or
// TIMED_OUT, then REDUCED. A round is never resubmitted here.
func (s *JudgeService) Execute(ctx context.Context, units []domain.ExecutionUnit, mode domain.CompareMode) (*domain.BatchVerdict, error) {
	roundID := uuid.New()
	started := time.Now()

	if len(units) == 0 {
		s.logger.Warn("Empty judging round", "roundId", roundID)
		return Reduce(nil, nil, mode), nil
	}

	tokens, err := s.Submit(ctx, units)
	if err != nil {
		s.metrics.ObserveRound("unavailable", time.Since(started).Seconds())
		return nil, err
	}
	s.logger.Info("Judging round submitted", "roundId", roundID, "state", RoundSubmitted, "units", len(units))

	s.logger.Debug("Judging round polling", "roundId", roundID, "state", RoundPolling)
	results, err := s.Poll(ctx, tokens, s.pollOpts)
	if err != nil {
		s.logger.Warn("Judging round abandoned", "roundId", roundID, "error", err)
		s.metrics.ObserveRound("cancelled", time.Since(started).Seconds())
		return nil, err
	}

	verdict := Reduce(units, results, mode)

	state := RoundAllTerminal
	if timedOut := verdict.TimedOutCount(); timedOut > 0 {
		state = RoundTimedOut
		s.metrics.AddTimedOutUnits(timedOut)
	}
	s.metrics.ObserveRound(string(verdict.OverallStatus), time.Since(started).Seconds())

	s.logger.Info("Judging round reduced",
		"roundId", roundID,
		"state", RoundReduced,
		"pollOutcome", state,
		"passed", verdict.PassedCount,
		"total", verdict.TotalCount,
		"overall", verdict.OverallStatus)

	return verdict, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveRound(string, float64) {}
func (nopMetrics) AddStatusQueries(int)         {}
func (nopMetrics) AddTimedOutUnits(int)         {}
