package mcp

import (
	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/bobmcallan/airflow-mcp/internal/config"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServerName is advertised to MCP clients during initialize.
const ServerName = "airflow-mcp"

// NewMCPServer creates the protocol server and installs the tools of reg.
// metrics may be nil. It returns the server and the number of exposed tools.
func NewMCPServer(reg *Registry, readOnly bool, metrics *Metrics, logger *common.Logger) (*mcpserver.MCPServer, int) {
	opts := []mcpserver.ServerOption{
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithToolHandlerMiddleware(LoggingMiddleware(logger)),
	}
	if metrics != nil {
		opts = append(opts, mcpserver.WithToolHandlerMiddleware(metrics.Middleware()))
	}

	s := mcpserver.NewMCPServer(ServerName, config.GetVersion(), opts...)
	count := reg.Install(s, readOnly)

	logger.Info().
		Int("tools", count).
		Int("registered", reg.Len()).
		Bool("read_only", readOnly).
		Msg("MCP server initialized")
	return s, count
}
