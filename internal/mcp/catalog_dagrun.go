package mcp

import "net/http"

func dagRunTools() []CatalogTool {
	runLink := Link{Kind: LinkDAGRun}
	runListLink := Link{Kind: LinkDAGRun, Collection: "dag_runs"}
	dagAndRun := []CatalogParam{dagIDParam, dagRunIDParam}

	return []CatalogTool{
		{
			Name:        "post_dag_run",
			Description: "Trigger a DAG by ID",
			Method:      http.MethodPost,
			Path:        "/dags/{dag_id}/dagRuns",
			Link:        runLink,
			Params: []CatalogParam{
				dagIDParam,
				bodyParam("dag_run_id", TypeString, "Run ID. If not provided, Airflow generates one"),
				bodyParam("data_interval_end", TypeDateTime, "The end of the interval the DAG run covers"),
				bodyParam("data_interval_start", TypeDateTime, "The beginning of the interval the DAG run covers"),
				bodyParam("execution_date", TypeDateTime, "The execution date. Deprecated alias of logical_date"),
				bodyParam("logical_date", TypeDateTime, "The logical date (previously called execution date)"),
				bodyParam("note", TypeString, "Contains manually entered notes by the user about the DagRun"),
			},
		},
		{
			Name:        "get_dag_runs",
			Description: "Get DAG runs by ID",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns",
			ReadOnly:    true,
			Link:        runListLink,
			Params: params(
				[]CatalogParam{dagIDParam},
				limitOffset(),
				dateRangeParams(InQuery, "execution_date", "start_date", "end_date", "updated_at"),
				[]CatalogParam{
					queryParam("state", TypeArray, "The value can be repeated to retrieve multiple matching values (OR condition)"),
					queryParam("order_by", TypeString, "The name of the field to order the results by"),
				},
			),
		},
		{
			// Airflow exposes the batch listing as a POST with a filter body.
			Name:        "get_dag_runs_batch",
			Description: "List DAG runs (batch)",
			Method:      http.MethodPost,
			Path:        "/dags/~/dagRuns/list",
			ReadOnly:    true,
			SafePost:    true,
			Link:        runListLink,
			Params: params(
				[]CatalogParam{bodyParam("dag_ids", TypeArray, "Return objects with specific DAG IDs")},
				dateRangeParams(InBody, "execution_date", "start_date", "end_date"),
				[]CatalogParam{
					bodyParam("state", TypeArray, "Return objects with specific states"),
					bodyParam("order_by", TypeString, "The name of the field to order the results by"),
					bodyParam("page_offset", TypeInteger, "The number of items to skip before starting to collect the result set"),
					bodyParam("page_limit", TypeInteger, "The numbers of items to return"),
				},
			),
		},
		{
			Name:        "get_dag_run",
			Description: "Get a DAG run by DAG ID and DAG run ID",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}",
			ReadOnly:    true,
			Link:        runLink,
			Params:      dagAndRun,
		},
		{
			Name:        "update_dag_run_state",
			Description: "Update a DAG run state by DAG ID and DAG run ID",
			Method:      http.MethodPatch,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}",
			Link:        runLink,
			Params: params(dagAndRun, []CatalogParam{
				{Name: "state", Type: TypeString, Description: "The state to set this DagRun", In: InBody,
					Enum: []string{"success", "failed", "queued"}},
			}),
		},
		{
			Name:        "delete_dag_run",
			Description: "Delete a DAG run by DAG ID and DAG run ID",
			Method:      http.MethodDelete,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}",
			Confirm:     "DAG run '{dag_run_id}' of DAG '{dag_id}' deleted successfully.",
			Params:      dagAndRun,
		},
		{
			Name:        "clear_dag_run",
			Description: "Clear a DAG run",
			Method:      http.MethodPost,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/clear",
			Params: params(dagAndRun, []CatalogParam{
				bodyParam("dry_run", TypeBoolean, "If set, don't actually run this operation; return what would be cleared"),
			}),
		},
		{
			Name:        "set_dag_run_note",
			Description: "Update the DagRun note",
			Method:      http.MethodPatch,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/setNote",
			Link:        runLink,
			Params: params(dagAndRun, []CatalogParam{
				required(bodyParam("note", TypeString, "Custom notes left by users for this Dag Run")),
			}),
		},
		{
			Name:        "get_upstream_dataset_events",
			Description: "Get dataset events for a DAG run",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/dagRuns/{dag_run_id}/upstreamDatasetEvents",
			ReadOnly:    true,
			Params:      dagAndRun,
		},
	}
}
