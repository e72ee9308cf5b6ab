package mcp

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Backend is the subset of *airflow.Client the tool handlers need.
type Backend interface {
	Do(ctx context.Context, req *airflow.Request) (*airflow.Response, error)
	UIBaseURL() string
}

// allowedMethods is the whitelist of HTTP methods for catalog tools.
var allowedMethods = map[string]bool{
	http.MethodGet: true, http.MethodPost: true, http.MethodPut: true, http.MethodPatch: true, http.MethodDelete: true,
}

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
	InBody  = "body"
)

// Parameter types. DateTime is a string carrying an RFC 3339 timestamp.
const (
	TypeString   = "string"
	TypeInteger  = "integer"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
	TypeArray    = "array"
	TypeObject   = "object"
	TypeDateTime = "date-time"
)

var validTypes = map[string]bool{
	TypeString: true, TypeInteger: true, TypeNumber: true, TypeBoolean: true,
	TypeArray: true, TypeObject: true, TypeDateTime: true,
}

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// CatalogTool declares one tool and the Airflow endpoint it maps onto.
type CatalogTool struct {
	Name        string
	Description string
	Method      string
	Path        string // relative to /api/<version>, {field} placeholders
	Params      []CatalogParam

	// ReadOnly tools never create, update, delete or trigger anything.
	ReadOnly bool
	// SafePost marks a POST that only queries (e.g. batch list endpoints).
	SafePost bool
	// UpdateMask sends the supplied body fields as repeated update_mask values.
	UpdateMask bool
	// FixedBody is merged into the body and the mask on every call.
	FixedBody map[string]any
	// Link adds ui_url deep links to the response.
	Link Link
	// Confirm is returned for empty responses; {param} is substituted from the arguments.
	Confirm string
	// Custom replaces the generic handler.
	Custom func(b Backend, ct CatalogTool) server.ToolHandlerFunc

	// Group is set from the owning Provider.
	Group string
}

// CatalogParam describes one tool argument.
type CatalogParam struct {
	Name        string
	Field       string // wire name, defaults to Name
	Type        string
	Description string
	Required    bool
	In          string
	Enum        []string
	// CSV sends an array query value as one comma separated value.
	CSV bool
}

// WireName returns the name used on the Airflow side.
func (p CatalogParam) WireName() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Name
}

// ValidateCatalogTool validates a single catalog tool entry.
func ValidateCatalogTool(ct CatalogTool) error {
	if ct.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	method := strings.ToUpper(ct.Method)
	if !allowedMethods[method] {
		return fmt.Errorf("tool %q has unsupported method %q", ct.Name, ct.Method)
	}
	if !strings.HasPrefix(ct.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", ct.Name, ct.Path)
	}
	if strings.Contains(ct.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", ct.Name, ct.Path)
	}

	if ct.ReadOnly {
		if method != http.MethodGet && !(method == http.MethodPost && ct.SafePost) {
			return fmt.Errorf("tool %q is read-only but uses %s", ct.Name, method)
		}
		if ct.UpdateMask || len(ct.FixedBody) > 0 {
			return fmt.Errorf("tool %q is read-only but declares an update", ct.Name)
		}
	}
	if ct.SafePost && method != http.MethodPost {
		return fmt.Errorf("tool %q marks a %s as a safe POST", ct.Name, method)
	}
	if ct.UpdateMask && method != http.MethodPatch {
		return fmt.Errorf("tool %q uses an update mask with %s", ct.Name, method)
	}

	names := make(map[string]bool, len(ct.Params))
	pathFields := make(map[string]bool)
	for _, p := range ct.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", ct.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("tool %q has duplicate parameter %q", ct.Name, p.Name)
		}
		names[p.Name] = true
		if !validTypes[p.Type] {
			return fmt.Errorf("tool %q parameter %q has unknown type %q", ct.Name, p.Name, p.Type)
		}
		switch p.In {
		case InPath:
			if !p.Required {
				return fmt.Errorf("tool %q path parameter %q must be required", ct.Name, p.Name)
			}
			if p.Type == TypeArray || p.Type == TypeObject {
				return fmt.Errorf("tool %q path parameter %q must be a scalar", ct.Name, p.Name)
			}
			pathFields[p.WireName()] = true
		case InQuery:
			if p.Type == TypeObject {
				return fmt.Errorf("tool %q query parameter %q cannot be an object", ct.Name, p.Name)
			}
		case InBody:
			if method == http.MethodGet || method == http.MethodDelete {
				return fmt.Errorf("tool %q sends body parameter %q with %s", ct.Name, p.Name, method)
			}
		default:
			return fmt.Errorf("tool %q parameter %q has invalid location %q", ct.Name, p.Name, p.In)
		}
	}

	placeholders := placeholderRe.FindAllStringSubmatch(ct.Path, -1)
	for _, m := range placeholders {
		if !pathFields[m[1]] {
			return fmt.Errorf("tool %q path placeholder {%s} has no parameter", ct.Name, m[1])
		}
		delete(pathFields, m[1])
	}
	for field := range pathFields {
		return fmt.Errorf("tool %q path parameter %q has no placeholder", ct.Name, field)
	}

	return nil
}

// BuildMCPTool converts a CatalogTool into an mcp.Tool with the appropriate schema.
func BuildMCPTool(ct CatalogTool) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(ct.Description),
		mcp.WithReadOnlyHintAnnotation(ct.ReadOnly),
		mcp.WithDestructiveHintAnnotation(strings.ToUpper(ct.Method) == http.MethodDelete),
	}
	for _, p := range ct.Params {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(ct.Name, opts...)
}

// buildParamOption maps a CatalogParam to the appropriate mcp-go tool option.
func buildParamOption(p CatalogParam) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}
	if len(p.Enum) > 0 {
		opts = append(opts, mcp.Enum(p.Enum...))
	}

	switch p.Type {
	case TypeInteger:
		opts = append(opts, schemaType("integer"))
		return mcp.WithNumber(p.Name, opts...)
	case TypeNumber:
		return mcp.WithNumber(p.Name, opts...)
	case TypeBoolean:
		return mcp.WithBoolean(p.Name, opts...)
	case TypeArray:
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	case TypeObject:
		return mcp.WithObject(p.Name, opts...)
	case TypeDateTime:
		opts = append(opts, schemaFormat("date-time"))
		return mcp.WithString(p.Name, opts...)
	default:
		return mcp.WithString(p.Name, opts...)
	}
}

func schemaType(t string) mcp.PropertyOption {
	return func(schema map[string]any) { schema["type"] = t }
}

func schemaFormat(f string) mcp.PropertyOption {
	return func(schema map[string]any) { schema["format"] = f }
}

// GenericToolHandler creates a handler that validates the arguments, issues
// exactly one Airflow request for ct and renders the response.
func GenericToolHandler(b Backend, ct CatalogTool, validator *argsValidator, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := r.GetArguments()
		if args == nil {
			args = map[string]any{}
		}

		if err := validator.Validate(args); err != nil {
			return toolError(err), nil
		}

		call, err := Assemble(ct, args)
		if err != nil {
			return toolError(err), nil
		}

		resp, err := b.Do(ctx, call.Request())
		if err != nil {
			logger.Warn().Str("tool", ct.Name).Str("error", err.Error()).Msg("airflow call failed")
			return toolError(err), nil
		}

		text, err := Format(ct, call, resp, b.UIBaseURL())
		if err != nil {
			return toolError(err), nil
		}
		return textResult(text), nil
	}
}
