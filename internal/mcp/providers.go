package mcp

// Provider contributes the tools of one Airflow resource group.
type Provider struct {
	Group string
	Tools []CatalogTool
}

// Providers returns every resource group in advertisement order.
func Providers() []Provider {
	return []Provider{
		{Group: "config", Tools: configTools()},
		{Group: "connection", Tools: connectionTools()},
		{Group: "dag", Tools: dagTools()},
		{Group: "dagrun", Tools: dagRunTools()},
		{Group: "dagstats", Tools: dagStatsTools()},
		{Group: "dataset", Tools: datasetTools()},
		{Group: "eventlog", Tools: eventLogTools()},
		{Group: "importerror", Tools: importErrorTools()},
		{Group: "monitoring", Tools: monitoringTools()},
		{Group: "plugin", Tools: pluginTools()},
		{Group: "pool", Tools: poolTools()},
		{Group: "provider", Tools: providerTools()},
		{Group: "taskinstance", Tools: taskInstanceTools()},
		{Group: "variable", Tools: variableTools()},
		{Group: "xcom", Tools: xcomTools()},
		{Group: "dagwarning", Tools: dagWarningTools()},
	}
}

// GroupNames lists the group of each provider.
func GroupNames(providers []Provider) []string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Group
	}
	return names
}

// Helpers for the catalog tables.

func pathParam(name, description string) CatalogParam {
	return CatalogParam{Name: name, Type: TypeString, Description: description, Required: true, In: InPath}
}

func queryParam(name, typ, description string) CatalogParam {
	return CatalogParam{Name: name, Type: typ, Description: description, In: InQuery}
}

func bodyParam(name, typ, description string) CatalogParam {
	return CatalogParam{Name: name, Type: typ, Description: description, In: InBody}
}

func required(p CatalogParam) CatalogParam {
	p.Required = true
	return p
}

func pageParams() []CatalogParam {
	return []CatalogParam{
		queryParam("limit", TypeInteger, "The numbers of items to return"),
		queryParam("offset", TypeInteger, "The number of items to skip before starting to collect the result set"),
		queryParam("order_by", TypeString, "The name of the field to order the results by. Prefix a field name with `-` to reverse the sort order"),
	}
}

func limitOffset() []CatalogParam {
	return pageParams()[:2]
}

func params(groups ...[]CatalogParam) []CatalogParam {
	var out []CatalogParam
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var (
	dagIDParam    = pathParam("dag_id", "The DAG ID")
	dagRunIDParam = pathParam("dag_run_id", "The DAG run ID")
	taskIDParam   = pathParam("task_id", "The task ID")
)

// dateRangeParams are the *_gte/*_lte filters shared by the run and task instance lists.
func dateRangeParams(in string, fields ...string) []CatalogParam {
	var out []CatalogParam
	for _, f := range fields {
		for _, suffix := range []string{"_gte", "_lte"} {
			p := CatalogParam{Name: f + suffix, Type: TypeDateTime, In: in}
			if suffix == "_gte" {
				p.Description = "Returns objects greater or equal to the specified " + f
			} else {
				p.Description = "Returns objects less than or equal to the specified " + f
			}
			out = append(out, p)
		}
	}
	return out
}
