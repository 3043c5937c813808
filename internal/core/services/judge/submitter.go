package judge

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// Submit hands all units to the remote judge in one call. Any failure of
// that call means nothing was submitted.
func (s *JudgeService) Submit(ctx context.Context, units []domain.ExecutionUnit) ([]domain.Token, error) {
	tokens, err := s.client.SubmitBatch(ctx, units)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		s.logger.Error("Failed to submit batch", "units", len(units), "error", err)
		var unavailable *domain.RemoteUnavailableError
		if errors.As(err, &unavailable) {
			return nil, err
		}
		return nil, &domain.RemoteUnavailableError{Op: "submit", Err: err}
	}

	if len(tokens) != len(units) {
		s.logger.Error("Token count mismatch", "units", len(units), "tokens", len(tokens))
		return nil, &domain.RemoteUnavailableError{
			Op:  "submit",
			Err: fmt.Errorf("judge returned %d tokens for %d units", len(tokens), len(units)),
		}
	}
	for i, token := range tokens {
		if token == "" {
			return nil, &domain.RemoteUnavailableError{
				Op:  "submit",
				Err: fmt.Errorf("judge returned an empty token for unit %d", i+1),
			}
		}
	}

	return tokens, nil
}
