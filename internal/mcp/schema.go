package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// argsValidator checks call arguments against a tool's advertised input schema.
type argsValidator struct {
	tool   string
	schema *jsonschema.Schema
}

// newArgsValidator compiles the input schema of tool.
func newArgsValidator(tool mcp.Tool) (*argsValidator, error) {
	raw, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input schema for %s: %w", tool.Name, err)
	}
	s, err := jsonschema.CompileString(tool.Name+".json", string(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid input schema for %s: %w", tool.Name, err)
	}
	return &argsValidator{tool: tool.Name, schema: s}, nil
}

// Validate reports the first leaf violation as a ValidationError.
func (v *argsValidator) Validate(args map[string]any) error {
	if v == nil {
		return nil
	}
	// Nulls stand for absent arguments and are not schema violations.
	present := make(map[string]any, len(args))
	for k, val := range args {
		if val != nil {
			present[k] = val
		}
	}

	err := v.schema.Validate(present)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Tool: v.tool, Reason: err.Error()}
	}
	leaf := firstLeafValidationError(ve)
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	msg := leaf.Message
	if msg == "" {
		msg = leaf.Error()
	}
	return &ValidationError{Tool: v.tool, Reason: fmt.Sprintf("invalid arguments at %s: %s", loc, msg)}
}

func firstLeafValidationError(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	if err == nil {
		return nil
	}
	if len(err.Causes) == 0 {
		return err
	}
	for _, c := range err.Causes {
		if leaf := firstLeafValidationError(c); leaf != nil {
			return leaf
		}
	}
	return err
}
