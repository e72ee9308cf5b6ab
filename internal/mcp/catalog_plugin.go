package mcp

import "net/http"

func pluginTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_plugins",
			Description: "Get a list of loaded plugins",
			Method:      http.MethodGet,
			Path:        "/plugins",
			ReadOnly:    true,
			Params:      limitOffset(),
		},
	}
}
