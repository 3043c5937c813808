package runs

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/services/run"
	"gitlab.com/dsa-judge.net/internal/handlers"
	"gitlab.com/dsa-judge.net/internal/handlers/response"
)

// RunHandler handles learner code runs
type RunHandler struct {
	runService run.IRunService
	logger     primary.Logger
}

func NewRunHandler(runService run.IRunService, logger primary.Logger) *RunHandler {
	return &RunHandler{
		runService: runService,
		logger:     logger,
	}
}

func (h *RunHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/runs", h.Run).Methods("POST")
}

// Run judges the source against the testcases and returns the verdict
func (h *RunHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	testcases, err := req.testCases()
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	var userID string
	if claims := handlers.ClaimsFrom(r.Context()); claims != nil {
		userID = claims.UserID
	}

	verdict, err := h.runService.Run(r.Context(), run.Request{
		UserID:     userID,
		ProblemID:  req.ProblemID,
		Language:   req.Language,
		SourceCode: req.SourceCode,
		TestCases:  testcases,
	})
	if err != nil {
		h.logger.Error("Failed to run code", "language", req.Language, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, verdict)
}
