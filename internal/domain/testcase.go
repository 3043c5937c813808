package domain

// TestCase is a stdin / expected stdout pair declared on a problem.
type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Example is a testcase shown to learners in the problem statement.
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Units builds one execution unit per testcase for the given source.
func Units(source string, code LanguageCode, testcases []TestCase) []ExecutionUnit {
	units := make([]ExecutionUnit, len(testcases))
	for i, tc := range testcases {
		expected := tc.Output
		units[i] = ExecutionUnit{
			SourceCode:     source,
			LanguageCode:   code,
			Stdin:          tc.Input,
			ExpectedOutput: &expected,
		}
	}
	return units
}
