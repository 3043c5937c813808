package judge

import (
	"testing"

	"gitlab.com/dsa-judge.net/internal/domain"
)

func unitsExpecting(outputs ...string) []domain.ExecutionUnit {
	units := make([]domain.ExecutionUnit, len(outputs))
	for i := range outputs {
		units[i] = domain.ExecutionUnit{SourceCode: "src", LanguageCode: 71, ExpectedOutput: &outputs[i]}
	}
	return units
}

func TestReduceAllAccepted(t *testing.T) {
	units := unitsExpecting("1", "2")
	results := []domain.UnitResult{accepted("1"), accepted("2")}

	verdict := Reduce(units, results, domain.CompareStatus)

	if verdict.OverallStatus != domain.OverallAccepted {
		t.Fatalf("OverallStatus = %s, want ACCEPTED", verdict.OverallStatus)
	}
	if verdict.PassedCount != 2 || verdict.TotalCount != 2 || verdict.SuccessRate != 100 {
		t.Fatalf("verdict = %+v, want 2/2 at 100%%", verdict)
	}
	if verdict.Units[1].Index != 2 {
		t.Fatalf("Units[1].Index = %d, want 2", verdict.Units[1].Index)
	}
}

func TestReduceEmptyIsFailed(t *testing.T) {
	verdict := Reduce(nil, nil, domain.CompareStatus)

	if verdict.OverallStatus != domain.OverallFailed {
		t.Fatalf("OverallStatus = %s, want FAILED", verdict.OverallStatus)
	}
	if verdict.SuccessRate != 0 || verdict.AverageTime != 0 || verdict.AverageMemory != 0 {
		t.Fatalf("verdict = %+v, want zero metrics", verdict)
	}
}

func TestReduceAveragesIgnoreMissingMetrics(t *testing.T) {
	units := unitsExpecting("", "", "")
	results := []domain.UnitResult{
		{Status: domain.StatusAccepted, Time: floatPtr(1.0), Memory: floatPtr(100)},
		{Status: domain.StatusAccepted, Time: floatPtr(2.0), Memory: floatPtr(300)},
		{Status: domain.StatusAccepted},
	}

	verdict := Reduce(units, results, domain.CompareStatus)

	if verdict.AverageTime != 1.5 {
		t.Fatalf("AverageTime = %v, want 1.5", verdict.AverageTime)
	}
	if verdict.AverageMemory != 200 {
		t.Fatalf("AverageMemory = %v, want 200", verdict.AverageMemory)
	}
}

func TestReducePassRules(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.CompareMode
		expected string
		result   domain.UnitResult
		passed   bool
	}{
		{"status accepted", domain.CompareStatus, "42", accepted("wrong"), true},
		{"status wrong answer", domain.CompareStatus, "42", domain.UnitResult{Status: domain.StatusWrongAnswer, Stdout: strPtr("42")}, false},
		{"status poll timeout", domain.CompareStatus, "42", domain.TimedOutResult("t"), false},
		{"trimmed trailing newline", domain.CompareTrimmedOutput, "42", accepted("42\n"), true},
		{"trimmed surrounding space", domain.CompareTrimmedOutput, " 42 \n", accepted("42"), true},
		{"trimmed wrong answer with equal output", domain.CompareTrimmedOutput, "42", domain.UnitResult{Status: domain.StatusWrongAnswer, Stdout: strPtr("42\n")}, true},
		{"trimmed different output", domain.CompareTrimmedOutput, "42", accepted("41"), false},
		{"trimmed runtime error with equal output", domain.CompareTrimmedOutput, "42", domain.UnitResult{Status: domain.StatusRuntimeError, Stdout: strPtr("42\n")}, true},
		{"trimmed time limit with equal output", domain.CompareTrimmedOutput, "42", domain.UnitResult{Status: domain.StatusTimeLimitExceeded, Stdout: strPtr("42\n")}, true},
		{"trimmed runtime error with other output", domain.CompareTrimmedOutput, "42", domain.UnitResult{Status: domain.StatusRuntimeError, Stdout: strPtr("")}, false},
		{"trimmed compilation error", domain.CompareTrimmedOutput, "42", domain.UnitResult{Status: domain.StatusCompilationError, CompileOutput: strPtr("error")}, false},
		{"trimmed missing stdout", domain.CompareTrimmedOutput, "", domain.UnitResult{Status: domain.StatusAccepted}, false},
		{"trimmed poll timeout", domain.CompareTrimmedOutput, "42", domain.TimedOutResult("t"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Reduce(unitsExpecting(tt.expected), []domain.UnitResult{tt.result}, tt.mode)
			if verdict.Units[0].Passed != tt.passed {
				t.Fatalf("Passed = %v, want %v", verdict.Units[0].Passed, tt.passed)
			}
		})
	}
}

func TestReduceMissingResultCountsAsTimeout(t *testing.T) {
	verdict := Reduce(unitsExpecting("1", "2"), []domain.UnitResult{accepted("1")}, domain.CompareStatus)

	if verdict.Units[1].Status != domain.StatusPollTimeout {
		t.Fatalf("Units[1].Status = %s, want POLL_TIMEOUT", verdict.Units[1].Status)
	}
	if verdict.Accepted() {
		t.Fatal("verdict with a missing result must not be accepted")
	}
}
