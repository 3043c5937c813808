package errs

import "errors"

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrRemoteUnavailable   = errors.New("remote judge unavailable")
	ErrVerificationFailed  = errors.New("reference solution verification failed")
)

var (
	ErrProblemNotFound    = errors.New("problem not found")
	ErrInvalidProblem     = errors.New("invalid problem definition")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidRun         = errors.New("invalid run request")
)
