package mcp

import "net/http"

func dagStatsTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_dag_stats",
			Description: "Get DAG stats",
			Method:      http.MethodGet,
			Path:        "/dagStats",
			ReadOnly:    true,
			Params: []CatalogParam{
				{Name: "dag_ids", Type: TypeArray, Description: "One or more DAG IDs to filter relevant DAGs", In: InQuery, CSV: true},
			},
		},
	}
}
