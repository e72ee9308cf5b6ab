package server

import (
	"net/http"

	"github.com/bobmcallan/airflow-mcp/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// MCP endpoints
	if s.app.MCPHandler != nil {
		if s.app.Config.Server.Transport == config.TransportSSE {
			mux.Handle("/sse", s.app.MCPHandler)
			mux.Handle("/message", s.app.MCPHandler)
		} else {
			mux.Handle("/mcp", s.app.MCPHandler)
		}
	}

	// Operational routes
	mux.Handle("/health", s.app.HealthHandler)
	mux.Handle("/health/airflow", s.app.AirflowHealthHandler)
	mux.Handle("/version", s.app.VersionHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(s.app.Metrics, promhttp.HandlerOpts{}))

	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
