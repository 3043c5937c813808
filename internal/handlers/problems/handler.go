package problems

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/services/problem"
	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/handlers"
	"gitlab.com/dsa-judge.net/internal/handlers/response"
)

// ProblemHandler handles problem API requests
type ProblemHandler struct {
	problemService problem.IProblemService
	logger         primary.Logger
	adminRole      string
}

// NewProblemHandler creates a new problem handler
func NewProblemHandler(problemService problem.IProblemService, logger primary.Logger, adminRole string) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		logger:         logger,
		adminRole:      adminRole,
	}
}

// RegisterRoutes registers the API routes on a router guarded by JWTMiddleware
func (h *ProblemHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.HandleFunc("/api/problems", mw.AdminOnly(h.CreateProblem)).Methods("POST")
	router.HandleFunc("/api/problems", h.ListProblems).Methods("GET")
	router.HandleFunc("/api/problems/{problemId}", h.GetProblem).Methods("GET")
	router.HandleFunc("/api/problems/{problemId}", mw.AdminOnly(h.UpdateProblem)).Methods("PUT")
	router.HandleFunc("/api/problems/{problemId}", mw.AdminOnly(h.DeleteProblem)).Methods("DELETE")
}

// CreateProblem verifies the reference solutions and stores the problem
func (h *ProblemHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	var req CreateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	claims := handlers.ClaimsFrom(r.Context())
	created, err := h.problemService.CreateProblem(r.Context(), claims.UserID, req.toDomain())
	if err != nil {
		h.logger.Error("Failed to create problem", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

// UpdateProblem merges the request into the stored problem
func (h *ProblemHandler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	problemID, ok := h.problemID(w, r)
	if !ok {
		return
	}

	var req UpdateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	updated, err := h.problemService.UpdateProblem(r.Context(), problemID, req.toPatch())
	if err != nil {
		h.logger.Error("Failed to update problem", "problemId", problemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, updated)
}

// GetProblem returns one problem. Reference solutions are only shown to admins.
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	problemID, ok := h.problemID(w, r)
	if !ok {
		return
	}

	p, err := h.problemService.GetProblem(r.Context(), problemID)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, h.visible(r, p))
}

// ListProblems pages through problems with the limit and offset query params
func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.problemService.ListProblems(r.Context(), limit, offset)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	for i, p := range list {
		list[i] = h.visible(r, p)
	}
	response.WriteSuccess(w, ListProblemsResponse{Problems: list})
}

// DeleteProblem removes a problem
func (h *ProblemHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	problemID, ok := h.problemID(w, r)
	if !ok {
		return
	}

	if err := h.problemService.DeleteProblem(r.Context(), problemID); err != nil {
		h.logger.Error("Failed to delete problem", "problemId", problemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProblemHandler) problemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["problemId"]
	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Error("Invalid problem ID", "id", raw)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid problem ID", StatusCode: http.StatusBadRequest})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProblemHandler) visible(r *http.Request, p *domain.Problem) *domain.Problem {
	if claims := handlers.ClaimsFrom(r.Context()); claims != nil && claims.Role == h.adminRole {
		return p
	}
	stripped := *p
	stripped.ReferenceSolutions = nil
	return &stripped
}
