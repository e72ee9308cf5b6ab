package mcp

import (
	"net/http"
	"strings"
	"testing"
)

// --- Catalog integrity ---

func TestProviders_EveryEntryValidates(t *testing.T) {
	seen := map[string]string{}
	for _, p := range Providers() {
		if len(p.Tools) == 0 {
			t.Errorf("group %s has no tools", p.Group)
		}
		for _, ct := range p.Tools {
			if err := ValidateCatalogTool(ct); err != nil {
				t.Errorf("group %s: %v", p.Group, err)
			}
			if prev, dup := seen[ct.Name]; dup {
				t.Errorf("tool %s declared in %s and %s", ct.Name, prev, p.Group)
			}
			seen[ct.Name] = p.Group
		}
	}
}

func TestProviders_ReadOnlyNeverMutates(t *testing.T) {
	for _, p := range Providers() {
		for _, ct := range p.Tools {
			if !ct.ReadOnly {
				continue
			}
			switch strings.ToUpper(ct.Method) {
			case http.MethodDelete, http.MethodPatch, http.MethodPut:
				t.Errorf("read-only tool %s uses %s", ct.Name, ct.Method)
			case http.MethodPost:
				if !ct.SafePost {
					t.Errorf("read-only tool %s uses an unmarked POST", ct.Name)
				}
			}
		}
	}
}

func TestProviders_MutatingToolsPresent(t *testing.T) {
	want := []string{"post_dag_run", "delete_dag", "pause_dag", "create_variable", "delete_pool", "update_task_instance"}
	tools := map[string]CatalogTool{}
	for _, p := range Providers() {
		for _, ct := range p.Tools {
			tools[ct.Name] = ct
		}
	}
	for _, name := range want {
		ct, ok := tools[name]
		if !ok {
			t.Errorf("missing tool %s", name)
			continue
		}
		if ct.ReadOnly {
			t.Errorf("tool %s must not be read-only", name)
		}
	}
}

// --- ValidateCatalogTool ---

func TestValidateCatalogTool_Rejects(t *testing.T) {
	base := CatalogTool{Name: "t", Method: http.MethodGet, Path: "/x/{id}", Params: []CatalogParam{pathParam("id", "")}}

	tests := []struct {
		name   string
		mutate func(ct *CatalogTool)
		want   string
	}{
		{"empty name", func(ct *CatalogTool) { ct.Name = "" }, "empty name"},
		{"bad method", func(ct *CatalogTool) { ct.Method = "TRACE" }, "unsupported method"},
		{"relative path", func(ct *CatalogTool) { ct.Path = "x/{id}" }, "must start with /"},
		{"dot dot", func(ct *CatalogTool) { ct.Path = "/../{id}" }, "contains .."},
		{"read-only delete", func(ct *CatalogTool) { ct.Method = http.MethodDelete; ct.ReadOnly = true }, "read-only but uses DELETE"},
		{"read-only plain post", func(ct *CatalogTool) { ct.Method = http.MethodPost; ct.ReadOnly = true }, "read-only but uses POST"},
		{"safe post on get", func(ct *CatalogTool) { ct.SafePost = true }, "safe POST"},
		{"mask on post", func(ct *CatalogTool) { ct.Method = http.MethodPost; ct.UpdateMask = true }, "update mask"},
		{"unknown type", func(ct *CatalogTool) {
			ct.Params = append(ct.Params, CatalogParam{Name: "q", Type: "uuid", In: InQuery})
		}, "unknown type"},
		{"duplicate param", func(ct *CatalogTool) { ct.Params = append(ct.Params, ct.Params[0]) }, "duplicate parameter"},
		{"optional path", func(ct *CatalogTool) { ct.Params[0].Required = false }, "must be required"},
		{"body on get", func(ct *CatalogTool) { ct.Params = append(ct.Params, bodyParam("b", TypeString, "")) }, "body parameter"},
		{"object query", func(ct *CatalogTool) { ct.Params = append(ct.Params, queryParam("o", TypeObject, "")) }, "cannot be an object"},
		{"orphan placeholder", func(ct *CatalogTool) { ct.Path = "/x/{id}/{other}" }, "{other} has no parameter"},
		{"orphan path param", func(ct *CatalogTool) { ct.Path = "/x" }, "has no placeholder"},
		{"bad location", func(ct *CatalogTool) {
			ct.Params = append(ct.Params, CatalogParam{Name: "h", Type: TypeString, In: "header"})
		}, "invalid location"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := base
			ct.Params = append([]CatalogParam(nil), base.Params...)
			tt.mutate(&ct)
			err := ValidateCatalogTool(ct)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateCatalogTool_SafePostReadOnly(t *testing.T) {
	ct := CatalogTool{Name: "list", Method: http.MethodPost, Path: "/x/list", ReadOnly: true, SafePost: true}
	if err := ValidateCatalogTool(ct); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// --- BuildMCPTool ---

func TestBuildMCPTool_SchemaAndAnnotations(t *testing.T) {
	ct := CatalogTool{
		Name:        "sample",
		Description: "Sample tool",
		Method:      http.MethodDelete,
		Path:        "/things/{id}",
		Params: []CatalogParam{
			{Name: "id", Type: TypeInteger, Required: true, In: InPath},
			queryParam("when", TypeDateTime, "timestamp"),
			queryParam("tags", TypeArray, "tags"),
			{Name: "state", Type: TypeString, In: InQuery, Enum: []string{"a", "b"}},
		},
	}
	tool := BuildMCPTool(ct)

	if tool.Description != "Sample tool" {
		t.Errorf("description = %q", tool.Description)
	}
	if tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint {
		t.Error("DELETE tool should carry the destructive hint")
	}
	if tool.Annotations.ReadOnlyHint == nil || *tool.Annotations.ReadOnlyHint {
		t.Error("DELETE tool must not be read-only")
	}

	props := tool.InputSchema.Properties
	if props["id"].(map[string]any)["type"] != "integer" {
		t.Errorf("id schema = %v", props["id"])
	}
	when := props["when"].(map[string]any)
	if when["type"] != "string" || when["format"] != "date-time" {
		t.Errorf("when schema = %v", when)
	}
	tags := props["tags"].(map[string]any)
	if tags["type"] != "array" {
		t.Errorf("tags schema = %v", tags)
	}
	if enum, ok := props["state"].(map[string]any)["enum"].([]string); !ok || len(enum) != 2 {
		t.Errorf("state enum = %v", props["state"])
	}
	if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "id" {
		t.Errorf("required = %v", tool.InputSchema.Required)
	}
}
