package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
)

// ValidationError rejects tool arguments before any backend call.
type ValidationError struct {
	Tool   string
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("%s: parameter %q %s", e.Tool, e.Param, e.Reason)
}

// Call is one assembled Airflow request.
type Call struct {
	Tool   string
	Method string
	Path   string
	Query  url.Values
	// Body is nil for GET and DELETE, otherwise a (possibly empty) object.
	Body map[string]any
	// Mask lists the body fields supplied by the caller, in catalog order.
	Mask []string
	Args map[string]any
}

// Request converts the call for the airflow client.
func (c *Call) Request() *airflow.Request {
	req := &airflow.Request{Method: c.Method, Path: c.Path, Query: c.Query}
	if c.Body != nil {
		req.Body = c.Body
	}
	return req
}

// Assemble maps sparse tool arguments onto the endpoint described by ct.
// Absent or null arguments are never sent; empty strings and lists are.
func Assemble(ct CatalogTool, args map[string]any) (*Call, error) {
	method := strings.ToUpper(ct.Method)
	call := &Call{
		Tool:   ct.Name,
		Method: method,
		Path:   ct.Path,
		Query:  url.Values{},
		Args:   args,
	}
	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		call.Body = map[string]any{}
	}

	for _, key := range sortedKeys(ct.FixedBody) {
		call.Body[key] = ct.FixedBody[key]
		call.Mask = append(call.Mask, key)
	}

	for _, p := range ct.Params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Required {
				return nil, &ValidationError{Tool: ct.Name, Param: p.Name, Reason: "is required"}
			}
			continue
		}
		if err := checkType(p, v); err != nil {
			return nil, &ValidationError{Tool: ct.Name, Param: p.Name, Reason: err.Error()}
		}

		field := p.WireName()
		switch p.In {
		case InPath:
			s := scalarString(v)
			if s == "" {
				return nil, &ValidationError{Tool: ct.Name, Param: p.Name, Reason: "must not be empty"}
			}
			call.Path = strings.ReplaceAll(call.Path, "{"+field+"}", url.PathEscape(s))
		case InQuery:
			if list, isList := v.([]any); isList {
				if len(list) == 0 {
					call.Query[field] = []string{""}
					continue
				}
				values := make([]string, len(list))
				for i, item := range list {
					values[i] = scalarString(item)
				}
				if p.CSV {
					values = []string{strings.Join(values, ",")}
				}
				call.Query[field] = append(call.Query[field], values...)
				continue
			}
			call.Query.Add(field, scalarString(v))
		case InBody:
			call.Body[field] = v
			if !slices.Contains(call.Mask, field) {
				call.Mask = append(call.Mask, field)
			}
		}
	}

	if ct.UpdateMask && len(call.Mask) > 0 {
		call.Query["update_mask"] = slices.Clone(call.Mask)
	}
	if len(call.Query) == 0 {
		call.Query = nil
	}
	return call, nil
}

// checkType verifies a decoded JSON value against the declared parameter type.
func checkType(p CatalogParam, v any) error {
	switch p.Type {
	case TypeString, TypeDateTime:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("must be a string, got %s", jsonKind(v))
		}
		if len(p.Enum) > 0 && !slices.Contains(p.Enum, s) {
			return fmt.Errorf("must be one of %s", strings.Join(p.Enum, ", "))
		}
	case TypeInteger:
		f, ok := toFloat(v)
		if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
			return fmt.Errorf("must be an integer, got %s", jsonKind(v))
		}
	case TypeNumber:
		if _, ok := toFloat(v); !ok {
			return fmt.Errorf("must be a number, got %s", jsonKind(v))
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("must be a boolean, got %s", jsonKind(v))
		}
	case TypeArray:
		list, ok := v.([]any)
		if !ok {
			return fmt.Errorf("must be an array, got %s", jsonKind(v))
		}
		if p.In == InQuery {
			for _, item := range list {
				switch item.(type) {
				case string, float64, bool, json.Number:
				default:
					return fmt.Errorf("must contain only scalar values")
				}
			}
		}
	case TypeObject:
		if _, ok := v.(map[string]any); !ok {
			return fmt.Errorf("must be an object, got %s", jsonKind(v))
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// scalarString renders a scalar for a path segment or query value.
// Whole numbers have no trailing ".0".
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	}
	return fmt.Sprint(v)
}

func jsonKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, int, int64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
