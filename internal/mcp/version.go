package mcp

import (
	"context"
	"encoding/json"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
	"github.com/bobmcallan/airflow-mcp/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// versionInfo holds version fields for one component.
type versionInfo struct {
	config.BuildInfo
	Error string `json:"error,omitempty"`
}

// VersionToolHandler returns a handler that combines airflow-mcp and Airflow
// version info. An unreachable Airflow is reported in the airflow entry
// instead of failing the call.
func VersionToolHandler(b Backend, ct CatalogTool) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := map[string]versionInfo{
			"airflow_mcp": {BuildInfo: config.Info()},
		}

		resp, err := b.Do(ctx, &airflow.Request{Method: ct.Method, Path: ct.Path})
		if err != nil {
			result["airflow"] = versionInfo{Error: err.Error()}
		} else {
			var v airflow.VersionInfo
			if err := json.Unmarshal(resp.Body, &v); err != nil {
				result["airflow"] = versionInfo{Error: "unreadable version response"}
			} else {
				result["airflow"] = versionInfo{BuildInfo: config.BuildInfo{Version: v.Version, Commit: v.GitVersion}}
			}
		}

		out, err := json.Marshal(result)
		if err != nil {
			return errorResult("failed to marshal version info"), nil
		}
		return textResult(string(out)), nil
	}
}
