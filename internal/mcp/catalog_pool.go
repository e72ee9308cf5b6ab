package mcp

import "net/http"

func poolTools() []CatalogTool {
	poolName := pathParam("pool_name", "The pool name")

	return []CatalogTool{
		{
			Name:        "get_pools",
			Description: "List pools",
			Method:      http.MethodGet,
			Path:        "/pools",
			ReadOnly:    true,
			Params:      pageParams(),
		},
		{
			Name:        "get_pool",
			Description: "Get a pool by name",
			Method:      http.MethodGet,
			Path:        "/pools/{pool_name}",
			ReadOnly:    true,
			Params:      []CatalogParam{poolName},
		},
		{
			Name:        "delete_pool",
			Description: "Delete a pool",
			Method:      http.MethodDelete,
			Path:        "/pools/{pool_name}",
			Confirm:     "Pool '{pool_name}' deleted successfully.",
			Params:      []CatalogParam{poolName},
		},
		{
			Name:        "post_pool",
			Description: "Create a pool",
			Method:      http.MethodPost,
			Path:        "/pools",
			Params: []CatalogParam{
				required(bodyParam("name", TypeString, "The pool name")),
				required(bodyParam("slots", TypeInteger, "The maximum number of slots")),
				bodyParam("description", TypeString, "The description of the pool"),
				bodyParam("include_deferred", TypeBoolean, "If set to true, deferred tasks are considered when calculating open pool slots"),
			},
		},
		{
			Name:        "patch_pool",
			Description: "Update a pool",
			Method:      http.MethodPatch,
			Path:        "/pools/{pool_name}",
			UpdateMask:  true,
			Params: []CatalogParam{
				poolName,
				bodyParam("slots", TypeInteger, "The maximum number of slots"),
				bodyParam("description", TypeString, "The description of the pool"),
				bodyParam("include_deferred", TypeBoolean, "If set to true, deferred tasks are considered when calculating open pool slots"),
			},
		},
	}
}
