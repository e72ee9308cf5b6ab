package mcp

import "net/http"

func configTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_config",
			Description: "Get current configuration",
			Method:      http.MethodGet,
			Path:        "/config",
			ReadOnly:    true,
			Params: []CatalogParam{
				queryParam("section", TypeString, "If given, only return config of this section"),
			},
		},
		{
			Name:        "get_value",
			Description: "Get a specific option from configuration",
			Method:      http.MethodGet,
			Path:        "/config/section/{section}/option/{option}",
			ReadOnly:    true,
			Params: []CatalogParam{
				pathParam("section", "The configuration section"),
				pathParam("option", "The option within the section"),
			},
		},
	}
}
