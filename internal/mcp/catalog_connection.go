package mcp

import "net/http"

// connectionFields are the optional attributes of a connection body.
func connectionFields() []CatalogParam {
	return []CatalogParam{
		bodyParam("host", TypeString, "Host of the connection"),
		bodyParam("port", TypeInteger, "Port of the connection"),
		bodyParam("login", TypeString, "Login of the connection"),
		bodyParam("password", TypeString, "Password of the connection"),
		bodyParam("schema", TypeString, "Schema of the connection"),
		bodyParam("extra", TypeString, "Other values that cannot be put into another field, e.g. RSA keys (JSON string)"),
	}
}

var connIDParam = CatalogParam{Name: "conn_id", Field: "connection_id", Type: TypeString, Description: "The connection ID", Required: true, In: InPath}

func connectionTools() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "list_connections",
			Description: "List all connections",
			Method:      http.MethodGet,
			Path:        "/connections",
			ReadOnly:    true,
			Params:      pageParams(),
		},
		{
			Name:        "create_connection",
			Description: "Create a connection",
			Method:      http.MethodPost,
			Path:        "/connections",
			Params: params(
				[]CatalogParam{
					{Name: "conn_id", Field: "connection_id", Type: TypeString, Description: "The connection ID", Required: true, In: InBody},
					required(bodyParam("conn_type", TypeString, "The connection type")),
				},
				connectionFields(),
			),
		},
		{
			Name:        "get_connection",
			Description: "Get a connection by ID",
			Method:      http.MethodGet,
			Path:        "/connections/{connection_id}",
			ReadOnly:    true,
			Params:      []CatalogParam{connIDParam},
		},
		{
			Name:        "update_connection",
			Description: "Update a connection by ID",
			Method:      http.MethodPatch,
			Path:        "/connections/{connection_id}",
			UpdateMask:  true,
			Params: params(
				[]CatalogParam{
					connIDParam,
					bodyParam("conn_type", TypeString, "The connection type"),
				},
				connectionFields(),
			),
		},
		{
			Name:        "delete_connection",
			Description: "Delete a connection by ID",
			Method:      http.MethodDelete,
			Path:        "/connections/{connection_id}",
			Confirm:     "Connection '{conn_id}' deleted successfully.",
			Params:      []CatalogParam{connIDParam},
		},
		{
			// Airflow only checks connectivity; nothing is stored.
			Name:        "test_connection",
			Description: "Test a connection",
			Method:      http.MethodPost,
			Path:        "/connections/test",
			ReadOnly:    true,
			SafePost:    true,
			Params: params(
				[]CatalogParam{required(bodyParam("conn_type", TypeString, "The connection type"))},
				connectionFields(),
			),
		},
	}
}
