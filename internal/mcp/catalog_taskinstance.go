package mcp

import "net/http"

func taskInstanceTools() []CatalogTool {
	tiLink := Link{Kind: LinkTaskInstance}
	tiPath := []CatalogParam{dagIDParam, dagRunIDParam, taskIDParam}

	return []CatalogTool{
		{
			Name:        "get_task_instance",
			Description: "Get a task instance by DAG ID, task ID, and DAG run ID",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/taskInstances/{task_id}",
			ReadOnly:    true,
			Link:        tiLink,
			Params:      tiPath,
		},
		{
			Name:        "list_task_instances",
			Description: "List task instances by DAG ID and DAG run ID",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/taskInstances",
			ReadOnly:    true,
			Link:        Link{Kind: LinkTaskInstance, Collection: "task_instances"},
			Params: params(
				[]CatalogParam{dagIDParam, dagRunIDParam},
				dateRangeParams(InQuery, "execution_date", "start_date", "end_date", "updated_at"),
				[]CatalogParam{
					queryParam("duration_gte", TypeNumber, "Returns objects greater than or equal to the specified values"),
					queryParam("duration_lte", TypeNumber, "Returns objects less than or equal to the specified values"),
					queryParam("state", TypeArray, "The value can be repeated to retrieve multiple matching values (OR condition)"),
					queryParam("pool", TypeArray, "The value can be repeated to retrieve multiple matching values (OR condition)"),
					queryParam("queue", TypeArray, "The value can be repeated to retrieve multiple matching values (OR condition)"),
				},
				limitOffset(),
			),
		},
		{
			Name:        "update_task_instance",
			Description: "Update a task instance by DAG ID, DAG run ID, and task ID",
			Method:      http.MethodPatch,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/taskInstances/{task_id}",
			UpdateMask:  true,
			Link:        tiLink,
			Params: params(tiPath, []CatalogParam{
				{Name: "state", Type: TypeString, Description: "The state to set this task instance", In: InBody,
					Enum: []string{"success", "failed", "skipped"}},
			}),
		},
		{
			Name:        "get_log",
			Description: "Get the log from a task instance by DAG ID, task ID, DAG run ID and task try number",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/taskInstances/{task_id}/logs/{task_try_number}",
			ReadOnly:    true,
			Params: params(tiPath, []CatalogParam{
				{Name: "task_try_number", Type: TypeInteger, Description: "The task try number", Required: true, In: InPath},
				queryParam("full_content", TypeBoolean, "Whether the response should contain the full log content"),
				queryParam("map_index", TypeInteger, "Filter on map index for mapped task"),
				queryParam("token", TypeString, "A token that allows you to continue fetching logs"),
			}),
		},
		{
			Name:        "list_task_instance_tries",
			Description: "List task instance tries by DAG ID, DAG run ID, and task ID",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/taskInstances/{task_id}/tries",
			ReadOnly:    true,
			Params:      params(tiPath, pageParams()),
		},
	}
}
