package handlers

import (
	"net/http"

	"github.com/bobmcallan/airflow-mcp/internal/common"
)

// HealthHandler reports liveness of the adapter itself. It never calls Airflow.
type HealthHandler struct {
	logger *common.Logger
	tools  int
}

// NewHealthHandler creates a new health handler. tools is the number of exposed tools.
func NewHealthHandler(logger *common.Logger, tools int) *HealthHandler {
	return &HealthHandler{logger: logger, tools: tools}
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"tools":  h.tools,
	})
}
