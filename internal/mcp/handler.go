package mcp

import (
	"encoding/json"
	"net/http"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
	"github.com/bobmcallan/airflow-mcp/internal/common"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Handler is the HTTP handler for the MCP endpoints. It scopes the caller's
// Authorization header to the request and delegates to an mcp-go transport.
type Handler struct {
	inner  http.Handler
	logger *common.Logger
}

// NewStreamableHandler serves the streamable HTTP transport at /mcp.
func NewStreamableHandler(s *mcpserver.MCPServer, logger *common.Logger) *Handler {
	streamable := mcpserver.NewStreamableHTTPServer(s,
		mcpserver.WithStateLess(true),
		mcpserver.WithEndpointPath("/mcp"),
	)
	return &Handler{inner: streamable, logger: logger}
}

// NewSSEHandler serves the SSE transport at /sse and /message. The endpoint
// event carries a relative /message path so clients resolve it against the
// URL they connected to, not the bind address.
func NewSSEHandler(s *mcpserver.MCPServer, logger *common.Logger) *Handler {
	sse := mcpserver.NewSSEServer(s,
		mcpserver.WithSSEEndpoint("/sse"),
		mcpserver.WithMessageEndpoint("/message"),
		mcpserver.WithUseFullURLForMessageEndpoint(false),
	)
	return &Handler{inner: sse, logger: logger}
}

// ServeHTTP attaches the request credential and delegates to the transport.
// A Bearer or Basic header with an empty payload is rejected with 401 before
// any tool can run.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cred, ok, err := credentialFromHeader(r.Header.Get("Authorization"))
	if err != nil {
		h.logger.Warn().Str("path", r.URL.Path).Str("error", err.Error()).Msg("rejected MCP request")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"error":             "unauthorized",
			"error_description": "Authorization header must carry a token or basic credential",
		})
		return
	}
	if ok {
		r = r.WithContext(airflow.WithCredential(r.Context(), cred))
		h.logger.Debug().Str("scheme", cred.Scheme()).Msg("using request credential")
	}
	h.inner.ServeHTTP(w, r)
}
