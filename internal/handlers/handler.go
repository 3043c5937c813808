package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/dsa-judge.net/internal/core/services/judge"
	"gitlab.com/dsa-judge.net/internal/handlers/response"
)

// HealthHandler reports liveness and the judged languages
type HealthHandler struct {
	serviceName string
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

func (h *HealthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/api/languages", h.Languages).Methods("GET")
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]string{"status": "ok", "service": h.serviceName})
}

func (h *HealthHandler) Languages(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]interface{}{"languages": judge.SupportedLanguages()})
}
