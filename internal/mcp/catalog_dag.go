package mcp

import "net/http"

func dagTools() []CatalogTool {
	dagLink := Link{Kind: LinkDAG}
	fileToken := pathParam("file_token", "The key containing the encrypted path to the file")
	includeFlags := []CatalogParam{
		bodyParam("include_upstream", TypeBoolean, "If set to true, upstream tasks are also affected"),
		bodyParam("include_downstream", TypeBoolean, "If set to true, downstream tasks are also affected"),
		bodyParam("include_future", TypeBoolean, "If set to true, also tasks from future DAG runs are affected"),
		bodyParam("include_past", TypeBoolean, "If set to true, also tasks from past DAG runs are affected"),
		bodyParam("dry_run", TypeBoolean, "If set, don't actually run this operation; return what would be affected"),
	}

	return []CatalogTool{
		{
			Name:        "fetch_dags",
			Description: "Fetch all DAGs",
			Method:      http.MethodGet,
			Path:        "/dags",
			ReadOnly:    true,
			Link:        Link{Kind: LinkDAG, Collection: "dags"},
			Params: params(pageParams(), []CatalogParam{
				queryParam("tags", TypeArray, "List of tags to filter results"),
				queryParam("only_active", TypeBoolean, "Only filter active DAGs"),
				queryParam("paused", TypeBoolean, "Only filter paused/unpaused DAGs"),
				queryParam("dag_id_pattern", TypeString, "If set, only return DAGs with dag_ids matching this pattern"),
			}),
		},
		{
			Name:        "get_dag",
			Description: "Get a DAG by ID",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}",
			ReadOnly:    true,
			Link:        dagLink,
			Params:      []CatalogParam{dagIDParam},
		},
		{
			Name:        "get_dag_details",
			Description: "Get a simplified representation of DAG",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/details",
			ReadOnly:    true,
			Link:        dagLink,
			Params: []CatalogParam{
				dagIDParam,
				queryParam("fields", TypeArray, "List of field for return"),
			},
		},
		{
			Name:        "get_dag_source",
			Description: "Get a source code",
			Method:      http.MethodGet,
			Path:        "/dagSources/{file_token}",
			ReadOnly:    true,
			Params:      []CatalogParam{fileToken},
		},
		{
			Name:        "pause_dag",
			Description: "Pause a DAG by ID",
			Method:      http.MethodPatch,
			Path:        "/dags/{dag_id}",
			UpdateMask:  true,
			FixedBody:   map[string]any{"is_paused": true},
			Link:        dagLink,
			Params:      []CatalogParam{dagIDParam},
		},
		{
			Name:        "unpause_dag",
			Description: "Unpause a DAG by ID",
			Method:      http.MethodPatch,
			Path:        "/dags/{dag_id}",
			UpdateMask:  true,
			FixedBody:   map[string]any{"is_paused": false},
			Link:        dagLink,
			Params:      []CatalogParam{dagIDParam},
		},
		{
			Name:        "get_dag_tasks",
			Description: "Get tasks for DAG",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/tasks",
			ReadOnly:    true,
			Params:      []CatalogParam{dagIDParam},
		},
		{
			Name:        "get_task",
			Description: "Get a task by ID",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/tasks/{task_id}",
			ReadOnly:    true,
			Params:      []CatalogParam{dagIDParam, taskIDParam},
		},
		{
			Name:        "get_tasks",
			Description: "Get tasks for DAG",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/tasks",
			ReadOnly:    true,
			Params: []CatalogParam{
				dagIDParam,
				queryParam("order_by", TypeString, "The name of the field to order the results by"),
			},
		},
		{
			Name:        "patch_dag",
			Description: "Update a DAG",
			Method:      http.MethodPatch,
			Path:        "/dags/{dag_id}",
			UpdateMask:  true,
			Link:        dagLink,
			Params: []CatalogParam{
				dagIDParam,
				bodyParam("is_paused", TypeBoolean, "Whether the DAG is paused"),
				bodyParam("tags", TypeArray, "List of tags"),
			},
		},
		{
			Name:        "patch_dags",
			Description: "Update multiple DAGs",
			Method:      http.MethodPatch,
			Path:        "/dags",
			UpdateMask:  true,
			Link:        Link{Kind: LinkDAG, Collection: "dags"},
			Params: []CatalogParam{
				queryParam("dag_id_pattern", TypeString, "If set, only update DAGs with dag_ids matching this pattern"),
				bodyParam("is_paused", TypeBoolean, "Whether the DAGs are paused"),
				bodyParam("tags", TypeArray, "List of tags"),
			},
		},
		{
			Name:        "delete_dag",
			Description: "Delete a DAG",
			Method:      http.MethodDelete,
			Path:        "/dags/{dag_id}",
			Confirm:     "DAG '{dag_id}' deleted successfully.",
			Params:      []CatalogParam{dagIDParam},
		},
		{
			Name:        "clear_task_instances",
			Description: "Clear a set of task instances",
			Method:      http.MethodPost,
			Path:        "/dags/{dag_id}/clearTaskInstances",
			Params: params(
				[]CatalogParam{
					dagIDParam,
					bodyParam("task_ids", TypeArray, "A list of task ids to clear"),
					bodyParam("start_date", TypeDateTime, "The minimum execution date to clear"),
					bodyParam("end_date", TypeDateTime, "The maximum execution date to clear"),
					bodyParam("include_subdags", TypeBoolean, "Clear tasks in subdags and clear external tasks indicated by ExternalTaskMarker"),
					bodyParam("include_parentdag", TypeBoolean, "Clear tasks in the parent dag of the subdag"),
				},
				includeFlags,
				[]CatalogParam{
					bodyParam("reset_dag_runs", TypeBoolean, "Set state of DAG runs to RUNNING"),
				},
			),
		},
		{
			Name:        "set_task_instances_state",
			Description: "Set a state of task instances",
			Method:      http.MethodPost,
			Path:        "/dags/{dag_id}/updateTaskInstancesState",
			Params: params(
				[]CatalogParam{
					dagIDParam,
					{Name: "state", Type: TypeString, Description: "Expected new state", Required: true, In: InBody,
						Enum: []string{"success", "failed", "skipped"}},
					bodyParam("task_ids", TypeArray, "A list of task ids to update"),
					bodyParam("execution_date", TypeDateTime, "The execution date of the DAG run"),
				},
				includeFlags,
			),
		},
		{
			Name:        "reparse_dag_file",
			Description: "Request re-parsing of a DAG file",
			Method:      http.MethodPut,
			Path:        "/parseDagFile/{file_token}",
			Confirm:     "Re-parsing of DAG file requested.",
			Params:      []CatalogParam{fileToken},
		},
	}
}
