package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// textResult wraps a rendered Airflow response as a single text content item.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(text)}}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(message)},
		IsError: true,
	}
}

// toolError reports err to the host as an IsError result. Backend errors carry
// the Airflow status and body verbatim.
func toolError(err error) *mcp.CallToolResult {
	return errorResult(fmt.Sprintf("Error: %v", err))
}
