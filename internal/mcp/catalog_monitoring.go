package mcp

import "net/http"

func monitoringTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_health",
			Description: "Get instance status",
			Method:      http.MethodGet,
			Path:        "/health",
			ReadOnly:    true,
		},
		{
			Name:        "get_version",
			Description: "Get version information for Airflow and this MCP server",
			Method:      http.MethodGet,
			Path:        "/version",
			ReadOnly:    true,
			Custom:      VersionToolHandler,
		},
	}
}
