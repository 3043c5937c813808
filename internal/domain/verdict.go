package domain

// OverallStatus is the aggregate outcome of a batch.
type OverallStatus string

const (
	OverallAccepted OverallStatus = "ACCEPTED"
	OverallFailed   OverallStatus = "FAILED"
)

// CompareMode selects how a terminal result is judged as passed.
type CompareMode int

const (
	// CompareStatus trusts the remote judge: only ACCEPTED passes.
	CompareStatus CompareMode = iota
	// CompareTrimmedOutput compares stdout and expected output after
	// trimming surrounding whitespace.
	CompareTrimmedOutput
)

// UnitVerdict is a unit result folded against its expectation.
type UnitVerdict struct {
	UnitResult
	Index    int     `json:"index"` // 1-based
	Stdin    string  `json:"stdin"`
	Expected *string `json:"expected"`
	Passed   bool    `json:"passed"`
}

// BatchVerdict is the order preserving outcome of one batch.
type BatchVerdict struct {
	Units         []UnitVerdict `json:"units"`
	PassedCount   int           `json:"passedCount"`
	TotalCount    int           `json:"totalCount"`
	OverallStatus OverallStatus `json:"overallStatus"`
	SuccessRate   float64       `json:"successRate"` // percent
	AverageTime   float64       `json:"averageTime"`
	AverageMemory float64       `json:"averageMemory"`
}

// Accepted reports whether every unit passed.
func (v *BatchVerdict) Accepted() bool {
	return v != nil && v.OverallStatus == OverallAccepted
}

// FirstFailure returns the first unit that did not pass, or nil.
func (v *BatchVerdict) FirstFailure() *UnitVerdict {
	if v == nil {
		return nil
	}
	for i := range v.Units {
		if !v.Units[i].Passed {
			return &v.Units[i]
		}
	}
	return nil
}

// TimedOutCount counts units reported with the poll timeout pseudo status.
func (v *BatchVerdict) TimedOutCount() int {
	if v == nil {
		return 0
	}
	n := 0
	for _, u := range v.Units {
		if u.Status == StatusPollTimeout {
			n++
		}
	}
	return n
}
