package mcp

import "net/http"

func providerTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_providers",
			Description: "Get a list of loaded providers",
			Method:      http.MethodGet,
			Path:        "/providers",
			ReadOnly:    true,
			Params:      limitOffset(),
		},
	}
}
