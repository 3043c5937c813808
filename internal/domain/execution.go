package domain

// Token identifies one in-flight ExecutionUnit at the remote judge. It is only
// valid for the judging round that produced it.
type Token string

// ExecutionUnit is one (code, language, stdin, expected output) job.
type ExecutionUnit struct {
	SourceCode     string
	LanguageCode   LanguageCode
	Stdin          string
	ExpectedOutput *string
}

// UnitResult is the latest known state of a submitted unit.
type UnitResult struct {
	Token         Token    `json:"token"`
	Status        Status   `json:"status"`
	StatusLabel   string   `json:"statusLabel"`
	Stdout        *string  `json:"stdout"`
	Stderr        *string  `json:"stderr"`
	CompileOutput *string  `json:"compileOutput,omitempty"`
	Time          *float64 `json:"time"`   // seconds
	Memory        *float64 `json:"memory"` // KB
}

// TimedOutResult builds the pseudo result reported for a token that never
// reached a terminal state.
func TimedOutResult(token Token) UnitResult {
	return UnitResult{
		Token:       token,
		Status:      StatusPollTimeout,
		StatusLabel: "Poll Timeout",
	}
}
