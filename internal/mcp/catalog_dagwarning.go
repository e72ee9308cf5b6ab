package mcp

import "net/http"

func dagWarningTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_dag_warnings",
			Description: "Get DAG warnings",
			Method:      http.MethodGet,
			Path:        "/dagWarnings",
			ReadOnly:    true,
			Params: params([]CatalogParam{
				queryParam("dag_id", TypeString, "If set, only return DAG warnings with this dag_id"),
				queryParam("warning_type", TypeString, "If set, only return DAG warnings with this type"),
			}, pageParams()),
		},
	}
}
