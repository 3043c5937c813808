package domain

import (
	"fmt"

	"gitlab.com/dsa-judge.net/internal/static/errs"
)

// ConfigurationError reports a language track with no known judge code.
type ConfigurationError struct {
	Language string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("language %s is not supported", e.Language)
}

func (e *ConfigurationError) Unwrap() error {
	return errs.ErrUnsupportedLanguage
}

// RemoteUnavailableError reports that a batch could not be handed to the
// remote judge. Nothing was submitted, so the caller may retry the batch.
type RemoteUnavailableError struct {
	Op  string
	Err error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("remote judge unavailable during %s: %v", e.Op, e.Err)
}

func (e *RemoteUnavailableError) Unwrap() []error {
	return []error{errs.ErrRemoteUnavailable, e.Err}
}

// Retryable is always true: no partial submission is left behind.
func (e *RemoteUnavailableError) Retryable() bool {
	return true
}

// VerificationError identifies the first failing testcase of a reference
// solution. TestcaseIndex is 1-based; zero means no testcase was declared.
type VerificationError struct {
	Language      LanguageTrack
	TestcaseIndex int
	Status        Status
	Verdict       *BatchVerdict
}

func (e *VerificationError) Error() string {
	if e.TestcaseIndex == 0 {
		return fmt.Sprintf("no testcases to verify language %s against", e.Language)
	}
	return fmt.Sprintf("Testcase %d failed for language %s", e.TestcaseIndex, e.Language)
}

func (e *VerificationError) Unwrap() error {
	return errs.ErrVerificationFailed
}
