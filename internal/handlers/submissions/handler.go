package submissions

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/services/submission"
	"gitlab.com/dsa-judge.net/internal/handlers"
	"gitlab.com/dsa-judge.net/internal/handlers/response"
)

// SubmissionHandler serves the caller's recorded runs
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

func NewSubmissionHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions", h.ListSubmissions).Methods("GET")
	router.HandleFunc("/api/submissions/problems/{problemId}", h.ListSubmissions).Methods("GET")
	router.HandleFunc("/api/problems/{problemId}/submissions/count", h.CountSubmissions).Methods("GET")
}

func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	var problemID *uuid.UUID
	if raw, ok := mux.Vars(r)["problemId"]; ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.WriteError(w, response.ErrorMessage{Message: "Invalid problem ID", StatusCode: http.StatusBadRequest})
			return
		}
		problemID = &id
	}

	claims := handlers.ClaimsFrom(r.Context())
	list, err := h.submissionService.ListSubmissions(r.Context(), claims.UserID, problemID)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, map[string]interface{}{"submissions": list})
}

func (h *SubmissionHandler) CountSubmissions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["problemId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid problem ID", StatusCode: http.StatusBadRequest})
		return
	}

	count, err := h.submissionService.CountSubmissions(r.Context(), id)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, map[string]int{"count": count})
}
