package mcp

import "net/http"

func eventLogTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_event_logs",
			Description: "List log entries from event log",
			Method:      http.MethodGet,
			Path:        "/eventLogs",
			ReadOnly:    true,
			Params: params(pageParams(), []CatalogParam{
				queryParam("dag_id", TypeString, "Returns objects matched by the DAG ID"),
				queryParam("task_id", TypeString, "Returns objects matched by the Task ID"),
				queryParam("run_id", TypeString, "Returns objects matched by the Run ID"),
				queryParam("map_index", TypeInteger, "Filter on map index for mapped task"),
				queryParam("try_number", TypeInteger, "Filter on try_number for task instance"),
				queryParam("event", TypeString, "The name of event log"),
				queryParam("owner", TypeString, "The owner's name of event log"),
				queryParam("before", TypeDateTime, "Timestamp to select event logs occurring before"),
				queryParam("after", TypeDateTime, "Timestamp to select event logs occurring after"),
				queryParam("included_events", TypeString, "One or more event names separated by commas. If set, only return event logs with events matching this pattern"),
				queryParam("excluded_events", TypeString, "One or more event names separated by commas. If set, only return event logs with events that do not match this pattern"),
			}),
		},
		{
			Name:        "get_event_log",
			Description: "Get a specific log entry by ID",
			Method:      http.MethodGet,
			Path:        "/eventLogs/{event_log_id}",
			ReadOnly:    true,
			Params: []CatalogParam{
				{Name: "event_log_id", Type: TypeInteger, Description: "The event log ID", Required: true, In: InPath},
			},
		},
	}
}
