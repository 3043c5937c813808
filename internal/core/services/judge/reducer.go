package judge

import (
	"strings"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// Reduce folds terminal results against their units. results[i] belongs to
// units[i]; a missing result counts as a poll timeout.
func Reduce(units []domain.ExecutionUnit, results []domain.UnitResult, mode domain.CompareMode) *domain.BatchVerdict {
	verdict := &domain.BatchVerdict{
		Units:         make([]domain.UnitVerdict, len(units)),
		TotalCount:    len(units),
		OverallStatus: domain.OverallFailed,
	}

	var totalTime, totalMemory float64
	var timed, measured int
	for i, unit := range units {
		result := domain.TimedOutResult("")
		if i < len(results) {
			result = results[i]
		}

		passed := unitPassed(unit, result, mode)
		if passed {
			verdict.PassedCount++
		}
		if result.Time != nil {
			totalTime += *result.Time
			timed++
		}
		if result.Memory != nil {
			totalMemory += *result.Memory
			measured++
		}

		verdict.Units[i] = domain.UnitVerdict{
			UnitResult: result,
			Index:      i + 1,
			Stdin:      unit.Stdin,
			Expected:   unit.ExpectedOutput,
			Passed:     passed,
		}
	}

	if timed > 0 {
		verdict.AverageTime = totalTime / float64(timed)
	}
	if measured > 0 {
		verdict.AverageMemory = totalMemory / float64(measured)
	}
	if verdict.TotalCount > 0 {
		verdict.SuccessRate = float64(verdict.PassedCount) / float64(verdict.TotalCount) * 100
		if verdict.PassedCount == verdict.TotalCount {
			verdict.OverallStatus = domain.OverallAccepted
		}
	}

	return verdict
}

func unitPassed(unit domain.ExecutionUnit, result domain.UnitResult, mode domain.CompareMode) bool {
	switch mode {
	case domain.CompareTrimmedOutput:
		if result.Stdout == nil || unit.ExpectedOutput == nil {
			return false
		}
		return strings.TrimSpace(*result.Stdout) == strings.TrimSpace(*unit.ExpectedOutput)
	default:
		return result.Status.IsAccepted()
	}
}
