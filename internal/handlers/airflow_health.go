package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
	"github.com/bobmcallan/airflow-mcp/internal/common"
)

// HealthChecker is satisfied by *airflow.Client.
type HealthChecker interface {
	Health(ctx context.Context) (*airflow.HealthStatus, error)
}

// AirflowHealthHandler reports the health of the upstream Airflow instance.
type AirflowHealthHandler struct {
	logger  *common.Logger
	checker HealthChecker
	timeout time.Duration
}

// NewAirflowHealthHandler creates a new upstream health handler.
func NewAirflowHealthHandler(logger *common.Logger, checker HealthChecker) *AirflowHealthHandler {
	return &AirflowHealthHandler{logger: logger, checker: checker, timeout: 3 * time.Second}
}

// ServeHTTP handles GET /health/airflow. It answers 503 unless the
// metadatabase and scheduler both report healthy.
func (h *AirflowHealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status, err := h.checker.Health(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("airflow health check failed")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down", "error": err.Error()})
		return
	}

	body := map[string]string{
		"metadatabase": status.Metadatabase.Status,
		"scheduler":    status.Scheduler.Status,
	}
	if status.Metadatabase.Status != "healthy" || status.Scheduler.Status != "healthy" {
		body["status"] = "degraded"
		WriteJSON(w, http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ok"
	WriteJSON(w, http.StatusOK, body)
}
