package runs

import (
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

// RunRequest is the body of POST /api/runs. Testcases may be given either as
// pairs or as parallel stdin / expectedOutputs arrays.
type RunRequest struct {
	Language        string            `json:"language"`
	SourceCode      string            `json:"sourceCode"`
	ProblemID       *uuid.UUID        `json:"problemId"`
	TestCases       []domain.TestCase `json:"testcases"`
	Stdin           []string          `json:"stdin"`
	ExpectedOutputs []string          `json:"expectedOutputs"`
}

func (r RunRequest) testCases() ([]domain.TestCase, error) {
	if len(r.TestCases) > 0 || len(r.Stdin) == 0 {
		return r.TestCases, nil
	}
	if len(r.Stdin) != len(r.ExpectedOutputs) {
		return nil, fmt.Errorf("%w: %d stdin entries but %d expected outputs", errs.ErrInvalidRun, len(r.Stdin), len(r.ExpectedOutputs))
	}
	testcases := make([]domain.TestCase, len(r.Stdin))
	for i := range r.Stdin {
		testcases[i] = domain.TestCase{Input: r.Stdin[i], Output: r.ExpectedOutputs[i]}
	}
	return testcases, nil
}
