package mcp

import "net/http"

func datasetTools() []CatalogTool {
	uri := pathParam("uri", "The encoded Dataset URI")
	before := queryParam("before", TypeDateTime, "Timestamp to select event logs occurring before")

	return []CatalogTool{
		{
			Name:        "get_datasets",
			Description: "List datasets",
			Method:      http.MethodGet,
			Path:        "/datasets",
			ReadOnly:    true,
			Params: params(pageParams(), []CatalogParam{
				queryParam("uri_pattern", TypeString, "If set, only return datasets with uris matching this pattern"),
				queryParam("dag_ids", TypeString, "One or more DAG IDs separated by commas to filter datasets by associated DAGs either consuming or producing"),
			}),
		},
		{
			Name:        "get_dataset",
			Description: "Get a dataset by URI",
			Method:      http.MethodGet,
			Path:        "/datasets/{uri}",
			ReadOnly:    true,
			Params:      []CatalogParam{uri},
		},
		{
			Name:        "get_dataset_events",
			Description: "Get dataset events",
			Method:      http.MethodGet,
			Path:        "/datasets/events",
			ReadOnly:    true,
			Params: params(pageParams(), []CatalogParam{
				queryParam("dataset_id", TypeInteger, "The Dataset ID that updated the dataset"),
				queryParam("source_dag_id", TypeString, "The DAG ID that updated the dataset"),
				queryParam("source_task_id", TypeString, "The task ID that updated the dataset"),
				queryParam("source_run_id", TypeString, "The DAG run ID that updated the dataset"),
				queryParam("source_map_index", TypeInteger, "The map index that updated the dataset"),
			}),
		},
		{
			Name:        "create_dataset_event",
			Description: "Create dataset event",
			Method:      http.MethodPost,
			Path:        "/datasets/events",
			Params: []CatalogParam{
				required(bodyParam("dataset_uri", TypeString, "The URI of the dataset")),
				bodyParam("extra", TypeObject, "The dataset event extra"),
			},
		},
		{
			Name:        "get_dag_dataset_queued_event",
			Description: "Get a queued Dataset event for a DAG",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/datasets/queuedEvent/{uri}",
			ReadOnly:    true,
			Params:      []CatalogParam{dagIDParam, uri},
		},
		{
			Name:        "get_dag_dataset_queued_events",
			Description: "Get queued Dataset events for a DAG",
			Method:      http.MethodGet,
			Path:        "/dags/{dag_id}/datasets/queuedEvent",
			ReadOnly:    true,
			Params:      []CatalogParam{dagIDParam},
		},
		{
			Name:        "delete_dag_dataset_queued_event",
			Description: "Delete a queued Dataset event for a DAG",
			Method:      http.MethodDelete,
			Path:        "/dags/{dag_id}/datasets/queuedEvent/{uri}",
			Confirm:     "Queued event for dataset '{uri}' of DAG '{dag_id}' deleted successfully.",
			Params:      []CatalogParam{dagIDParam, uri},
		},
		{
			Name:        "delete_dag_dataset_queued_events",
			Description: "Delete queued Dataset events for a DAG",
			Method:      http.MethodDelete,
			Path:        "/dags/{dag_id}/datasets/queuedEvent",
			Confirm:     "Queued dataset events of DAG '{dag_id}' deleted successfully.",
			Params:      []CatalogParam{dagIDParam, before},
		},
		{
			Name:        "get_dataset_queued_events",
			Description: "Get queued Dataset events for a Dataset",
			Method:      http.MethodGet,
			Path:        "/datasets/queuedEvent/{uri}",
			ReadOnly:    true,
			Params:      []CatalogParam{uri},
		},
		{
			Name:        "delete_dataset_queued_events",
			Description: "Delete queued Dataset events for a Dataset",
			Method:      http.MethodDelete,
			Path:        "/datasets/queuedEvent/{uri}",
			Confirm:     "Queued events for dataset '{uri}' deleted successfully.",
			Params:      []CatalogParam{uri, before},
		},
	}
}
