package judge

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/dsa-judge.net/internal/domain"
)

const (
	defaultPollInterval = time.Second
	defaultMaxWait      = 30 * time.Second
)

func (o PollOptions) withDefaults() PollOptions {
	if o.Interval <= 0 {
		o.Interval = defaultPollInterval
	}
	if o.MaxWait <= 0 {
		o.MaxWait = defaultMaxWait
	}
	return o
}

// Poll queries the remote judge until every token is terminal or MaxWait
// elapses. Tokens still pending at that point are reported with the poll
// timeout pseudo status. Results are returned in the order of tokens.
func (s *JudgeService) Poll(ctx context.Context, tokens []domain.Token, opts PollOptions) ([]domain.UnitResult, error) {
	opts = opts.withDefaults()

	results := make([]domain.UnitResult, len(tokens))
	pending := make(map[domain.Token][]int, len(tokens))
	order := make([]domain.Token, 0, len(tokens))
	for i, token := range tokens {
		if _, seen := pending[token]; !seen {
			order = append(order, token)
		}
		pending[token] = append(pending[token], i)
	}

	deadline := time.Now().Add(opts.MaxWait)
	for round := 1; len(pending) > 0; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("polling cancelled: %w", err)
		}

		outstanding := make([]domain.Token, 0, len(pending))
		for _, token := range order {
			if _, ok := pending[token]; ok {
				outstanding = append(outstanding, token)
			}
		}

		s.metrics.AddStatusQueries(1)
		// a slow status query must not outlive MaxWait
		queryCtx, cancel := context.WithDeadline(ctx, deadline)
		latest, err := s.client.GetBatch(queryCtx, outstanding)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("polling cancelled: %w", ctx.Err())
			}
			s.logger.Warn("Failed to query batch status", "round", round, "outstanding", len(outstanding), "error", err)
		}

		for _, result := range latest {
			positions, ok := pending[result.Token]
			if !ok || !result.Status.IsTerminal() {
				continue
			}
			for _, i := range positions {
				results[i] = result
			}
			delete(pending, result.Token)
		}

		if len(pending) == 0 {
			break
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			s.logger.Warn("Polling exceeded max wait", "outstanding", len(pending), "maxWait", opts.MaxWait)
			for token, positions := range pending {
				for _, i := range positions {
					results[i] = domain.TimedOutResult(token)
				}
			}
			break
		}

		s.logger.Debug("Tokens still pending", "round", round, "outstanding", len(pending))
		wait := min(opts.Interval, remaining)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("polling cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return results, nil
}
