package judge0

import "gitlab.com/dsa-judge.net/internal/domain"

// Judge0 CE status ids.
const (
	statusInQueue           = 1
	statusProcessing        = 2
	statusAccepted          = 3
	statusWrongAnswer       = 4
	statusTimeLimitExceeded = 5
	statusCompilationError  = 6
	statusRuntimeSIGSEGV    = 7
	statusRuntimeSIGXFSZ    = 8
	statusRuntimeSIGFPE     = 9
	statusRuntimeSIGABRT    = 10
	statusRuntimeNZEC       = 11
	statusRuntimeOther      = 12
	statusInternalError     = 13
	statusExecFormatError   = 14
)

// translateStatus maps a Judge0 status id onto the domain enum.
func translateStatus(id int) domain.Status {
	switch id {
	case statusInQueue:
		return domain.StatusInQueue
	case statusProcessing:
		return domain.StatusProcessing
	case statusAccepted:
		return domain.StatusAccepted
	case statusWrongAnswer:
		return domain.StatusWrongAnswer
	case statusTimeLimitExceeded:
		return domain.StatusTimeLimitExceeded
	case statusCompilationError:
		return domain.StatusCompilationError
	case statusRuntimeSIGSEGV, statusRuntimeSIGXFSZ, statusRuntimeSIGFPE,
		statusRuntimeSIGABRT, statusRuntimeNZEC, statusRuntimeOther:
		return domain.StatusRuntimeError
	case statusInternalError:
		return domain.StatusInternalError
	case statusExecFormatError:
		return domain.StatusExecFormatError
	default:
		return domain.StatusUnknown
	}
}
