package mcp

import "net/http"

func variableTools() []CatalogTool {
	key := CatalogParam{Name: "key", Field: "variable_key", Type: TypeString, Description: "The variable key", Required: true, In: InPath}

	return []CatalogTool{
		{
			Name:        "list_variables",
			Description: "List all variables",
			Method:      http.MethodGet,
			Path:        "/variables",
			ReadOnly:    true,
			Params:      pageParams(),
		},
		{
			Name:        "create_variable",
			Description: "Create a variable",
			Method:      http.MethodPost,
			Path:        "/variables",
			Params: []CatalogParam{
				required(bodyParam("key", TypeString, "The variable key")),
				required(bodyParam("value", TypeString, "The variable value")),
				bodyParam("description", TypeString, "The description of the variable"),
			},
		},
		{
			Name:        "get_variable",
			Description: "Get a variable by key",
			Method:      http.MethodGet,
			Path:        "/variables/{variable_key}",
			ReadOnly:    true,
			Params:      []CatalogParam{key},
		},
		{
			Name:        "update_variable",
			Description: "Update a variable by key",
			Method:      http.MethodPatch,
			Path:        "/variables/{variable_key}",
			UpdateMask:  true,
			Params: []CatalogParam{
				key,
				bodyParam("value", TypeString, "The variable value"),
				bodyParam("description", TypeString, "The description of the variable"),
			},
		},
		{
			Name:        "delete_variable",
			Description: "Delete a variable by key",
			Method:      http.MethodDelete,
			Path:        "/variables/{variable_key}",
			Confirm:     "Variable '{key}' deleted successfully.",
			Params:      []CatalogParam{key},
		},
	}
}
