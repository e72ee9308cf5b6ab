package mcp

import "net/http"

func importErrorTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_import_errors",
			Description: "List import errors",
			Method:      http.MethodGet,
			Path:        "/importErrors",
			ReadOnly:    true,
			Params:      pageParams(),
		},
		{
			Name:        "get_import_error",
			Description: "Get a specific import error by ID",
			Method:      http.MethodGet,
			Path:        "/importErrors/{import_error_id}",
			ReadOnly:    true,
			Params: []CatalogParam{
				{Name: "import_error_id", Type: TypeInteger, Description: "The import error ID", Required: true, In: InPath},
			},
		},
	}
}
