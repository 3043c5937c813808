package domain

// Status is the closed set of unit states the orchestrator reasons about.
// Remote status codes are translated into it once, at the judge adapter.
type Status string

const (
	StatusUnknown           Status = "UNKNOWN"
	StatusInQueue           Status = "IN_QUEUE"
	StatusProcessing        Status = "PROCESSING"
	StatusAccepted          Status = "ACCEPTED"
	StatusWrongAnswer       Status = "WRONG_ANSWER"
	StatusTimeLimitExceeded Status = "TIME_LIMIT_EXCEEDED"
	StatusCompilationError  Status = "COMPILATION_ERROR"
	StatusRuntimeError      Status = "RUNTIME_ERROR"
	StatusInternalError     Status = "INTERNAL_ERROR"
	StatusExecFormatError   Status = "EXEC_FORMAT_ERROR"

	// StatusPollTimeout marks a unit that was still pending when the
	// poller gave up waiting. It is never produced by the remote judge.
	StatusPollTimeout Status = "POLL_TIMEOUT"
)

// IsTerminal reports whether the remote judge will no longer update the unit.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusInQueue, StatusProcessing:
		return false
	default:
		return true
	}
}

// IsAccepted reports whether s is the only successful terminal state.
func (s Status) IsAccepted() bool {
	return s == StatusAccepted
}
