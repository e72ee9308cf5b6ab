package mcp

import (
	"errors"
	"strings"
	"testing"
)

func TestArgsValidator(t *testing.T) {
	tool := BuildMCPTool(lookupTool(t, "get_dag_runs"))
	v, err := newArgsValidator(tool)
	if err != nil {
		t.Fatalf("newArgsValidator: %v", err)
	}

	// --- Accepted ---
	accepted := []map[string]any{
		{"dag_id": "etl"},
		{"dag_id": "etl", "limit": float64(10), "state": []any{"failed"}},
		{"dag_id": "etl", "limit": nil},
		{"dag_id": "etl", "start_date_gte": "2024-01-01T00:00:00Z"},
	}
	for _, args := range accepted {
		if err := v.Validate(args); err != nil {
			t.Errorf("Validate(%v) = %v", args, err)
		}
	}

	// --- Rejected ---
	rejected := []map[string]any{
		{},
		{"dag_id": float64(1)},
		{"dag_id": "etl", "limit": "10"},
		{"dag_id": "etl", "limit": 2.5},
		{"dag_id": "etl", "state": "failed"},
	}
	for _, args := range rejected {
		err := v.Validate(args)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Validate(%v) = %v, want ValidationError", args, err)
			continue
		}
		if !strings.Contains(err.Error(), "invalid arguments at") {
			t.Errorf("unexpected message %q", err)
		}
	}
}

func TestArgsValidator_EveryCatalogToolCompiles(t *testing.T) {
	for _, p := range Providers() {
		for _, ct := range p.Tools {
			if _, err := newArgsValidator(BuildMCPTool(ct)); err != nil {
				t.Errorf("%s: %v", ct.Name, err)
			}
		}
	}
}
