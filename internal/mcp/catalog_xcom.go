package mcp

import "net/http"

func xcomTools() []CatalogTool {
	base := []CatalogParam{dagIDParam, dagRunIDParam, taskIDParam}

	return []CatalogTool{
		{
			Name:        "get_xcom_entries",
			Description: "Get all XCom entries",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/taskInstances/{task_id}/xcomEntries",
			ReadOnly:    true,
			Params: params(base, []CatalogParam{
				queryParam("map_index", TypeInteger, "Filter on map index for mapped task"),
				queryParam("xcom_key", TypeString, "Only filter the XCom records which have the provided key"),
			}, limitOffset()),
		},
		{
			Name:        "get_xcom_entry",
			Description: "Get an XCom entry",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/taskInstances/{task_id}/xcomEntries/{xcom_key}",
			ReadOnly:    true,
			Params: params(base, []CatalogParam{
				pathParam("xcom_key", "The XCom key"),
				queryParam("map_index", TypeInteger, "Filter on map index for mapped task"),
				queryParam("deserialize", TypeBoolean, "Whether to deserialize an XCom value when using a custom XCom backend"),
				queryParam("stringify", TypeBoolean, "Whether to convert the XCom value to be a string"),
			}),
		},
	}
}
