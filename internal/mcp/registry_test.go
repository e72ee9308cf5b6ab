package mcp

import (
	"context"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func noopHandler(context.Context, mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return &mcpgo.CallToolResult{}, nil
}

func descriptor(name string, readOnly bool) Descriptor {
	return Descriptor{Name: name, ReadOnly: readOnly, Tool: mcpgo.NewTool(name), Handler: noopHandler}
}

// --- Registry ---

func TestRegistry_PreservesOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		if err := reg.Register(descriptor(name, false)); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	var got []string
	for _, d := range reg.All() {
		got = append(got, d.Name)
	}
	if strings.Join(got, ",") != "c,a,b" {
		t.Errorf("order = %v", got)
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	reg.Register(descriptor("get_dag", true))
	err := reg.Register(descriptor("get_dag", false))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d", reg.Len())
	}
}

func TestRegistry_RejectsInvalidDescriptors(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Descriptor{Handler: noopHandler}); err == nil {
		t.Error("expected error for empty name")
	}
	if err := reg.Register(Descriptor{Name: "x"}); err == nil {
		t.Error("expected error for nil handler")
	}
}

func TestRegistry_LookupAndFilter(t *testing.T) {
	reg := NewRegistry()
	reg.Register(descriptor("get_pool", true))
	reg.Register(descriptor("delete_pool", false))

	if _, ok := reg.Lookup("delete_pool"); !ok {
		t.Error("Lookup(delete_pool) failed")
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) succeeded")
	}
	ro := reg.Filter(ReadOnlyOnly)
	if len(ro) != 1 || ro[0].Name != "get_pool" {
		t.Errorf("Filter(ReadOnlyOnly) = %v", ro)
	}
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Register(descriptor("a", true))
	all := reg.All()
	all[0].Name = "mutated"
	if d, _ := reg.Lookup("a"); d.Name != "a" {
		t.Error("All exposed internal state")
	}
}

func TestRegistry_InstallReadOnly(t *testing.T) {
	reg := NewRegistry()
	reg.Register(descriptor("get_pool", true))
	reg.Register(descriptor("delete_pool", false))
	reg.Register(descriptor("get_pools", true))

	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(true))
	if n := reg.Install(s, true); n != 2 {
		t.Errorf("Install(readOnly) = %d, want 2", n)
	}
	tools := listTools(t, s)
	for _, tool := range tools {
		if tool.Name == "delete_pool" {
			t.Error("delete_pool installed in read-only mode")
		}
	}
}

// --- BuildRegistry ---

func TestBuildRegistry_AllGroups(t *testing.T) {
	reg, err := BuildRegistry(&fakeBackend{}, Providers(), nil, testLogger())
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	total := 0
	for _, p := range Providers() {
		total += len(p.Tools)
	}
	if reg.Len() != total {
		t.Errorf("Len = %d, want %d", reg.Len(), total)
	}
	d, ok := reg.Lookup("get_dag_runs")
	if !ok || d.Group != "dagrun" || !d.ReadOnly {
		t.Errorf("get_dag_runs descriptor = %+v", d)
	}
}

func TestBuildRegistry_SelectedGroups(t *testing.T) {
	reg, err := BuildRegistry(&fakeBackend{}, Providers(), []string{"pool", " variable"}, testLogger())
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	for _, d := range reg.All() {
		if d.Group != "pool" && d.Group != "variable" {
			t.Errorf("tool %s from unselected group %s", d.Name, d.Group)
		}
	}
	if _, ok := reg.Lookup("fetch_dags"); ok {
		t.Error("fetch_dags registered although dag group not selected")
	}
}

func TestBuildRegistry_UnknownGroup(t *testing.T) {
	_, err := BuildRegistry(&fakeBackend{}, Providers(), []string{"dag", "dags"}, testLogger())
	if err == nil {
		t.Fatal("expected error for unknown group")
	}
	if !strings.Contains(err.Error(), "unknown tool groups dags") {
		t.Errorf("error = %v", err)
	}
}

func TestBuildRegistry_InvalidCatalog(t *testing.T) {
	bad := []Provider{{Group: "x", Tools: []CatalogTool{{Name: "broken", Method: "GET", Path: "/x/{id}"}}}}
	if _, err := BuildRegistry(&fakeBackend{}, bad, nil, testLogger()); err == nil {
		t.Error("expected catalog validation error")
	}
}

func TestBuildRegistry_DuplicateAcrossProviders(t *testing.T) {
	tool := CatalogTool{Name: "get_health", Method: "GET", Path: "/health", ReadOnly: true}
	dup := []Provider{{Group: "a", Tools: []CatalogTool{tool}}, {Group: "b", Tools: []CatalogTool{tool}}}
	if _, err := BuildRegistry(&fakeBackend{}, dup, nil, testLogger()); err == nil {
		t.Error("expected duplicate tool error")
	}
}
