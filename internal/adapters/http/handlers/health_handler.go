package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

// HealthHandler serves the orchestrator probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler reading from registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is the signal, so
// it never consults TeamForge.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readiness handles GET /health/ready: 200 while every registered checker
// passes, 503 with the failing checks otherwise. The TeamForge checker only
// reads circuit breaker state, so probes never open SOAP sessions.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
