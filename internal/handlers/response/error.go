package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"status_code"`
	Details    interface{} `json:"details,omitempty"`
}

// VerificationDetails locates the failing reference solution testcase.
type VerificationDetails struct {
	Language string `json:"language"`
	Testcase int    `json:"testcase"`
	Status   string `json:"status"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// FromError maps service errors to a response. Unknown errors become a
// generic 500 so internals are not leaked.
func FromError(err error) ErrorMessage {
	var (
		verificationErr *domain.VerificationError
		configErr       *domain.ConfigurationError
	)

	switch {
	case errors.As(err, &verificationErr):
		msg := ErrorMessage{Message: verificationErr.Error(), StatusCode: http.StatusBadRequest}
		if verificationErr.TestcaseIndex > 0 {
			msg.Details = VerificationDetails{
				Language: string(verificationErr.Language),
				Testcase: verificationErr.TestcaseIndex,
				Status:   string(verificationErr.Status),
			}
		}
		return msg
	case errors.As(err, &configErr):
		return ErrorMessage{Message: configErr.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, errs.ErrInvalidProblem), errors.Is(err, errs.ErrInvalidRun):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, errs.ErrProblemNotFound), errors.Is(err, errs.ErrSubmissionNotFound):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.ErrRemoteUnavailable):
		return ErrorMessage{Message: errs.ErrRemoteUnavailable.Error(), StatusCode: http.StatusBadGateway}
	case errors.Is(err, errs.MissingAuthorization), errors.Is(err, errs.InvalidToken):
		return ErrorMessage{Message: "Not authorized", StatusCode: http.StatusUnauthorized}
	case errors.Is(err, errs.AdminRequired):
		return ErrorMessage{Message: errs.AdminRequired.Error(), StatusCode: http.StatusForbidden}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorMessage{Message: "request cancelled", StatusCode: http.StatusRequestTimeout}
	default:
		return ErrorMessage{Message: errs.InternalError.Error(), StatusCode: http.StatusInternalServerError}
	}
}
