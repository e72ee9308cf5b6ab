package mcp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Descriptor is one registered tool. Descriptors are immutable once registered.
type Descriptor struct {
	Name        string
	Description string
	Group       string
	ReadOnly    bool
	Tool        mcp.Tool
	Handler     server.ToolHandlerFunc
}

// Registry holds tool descriptors in registration order.
type Registry struct {
	descriptors []Descriptor
	index       map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends d. A duplicate name is a configuration error.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("tool descriptor has empty name")
	}
	if d.Handler == nil {
		return fmt.Errorf("tool %q has no handler", d.Name)
	}
	if _, exists := r.index[d.Name]; exists {
		return fmt.Errorf("duplicate tool name %q", d.Name)
	}
	r.index[d.Name] = len(r.descriptors)
	r.descriptors = append(r.descriptors, d)
	return nil
}

// All returns every descriptor in registration order.
func (r *Registry) All() []Descriptor {
	return slices.Clone(r.descriptors)
}

// Filter returns the descriptors matching pred, in registration order.
func (r *Registry) Filter(pred func(Descriptor) bool) []Descriptor {
	var out []Descriptor
	for _, d := range r.descriptors {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds a descriptor by tool name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	i, ok := r.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// ReadOnlyOnly is the read-only mode predicate.
func ReadOnlyOnly(d Descriptor) bool {
	return d.ReadOnly
}

// Install adds the selected tools to s and returns how many were added.
// In read-only mode the remaining tools are never added, so they cannot be called.
func (r *Registry) Install(s *server.MCPServer, readOnly bool) int {
	selected := r.All()
	if readOnly {
		selected = r.Filter(ReadOnlyOnly)
	}
	for _, d := range selected {
		s.AddTool(d.Tool, d.Handler)
	}
	return len(selected)
}

// BuildRegistry validates the catalog of every selected provider and registers
// its tools. An empty groups list selects all providers.
func BuildRegistry(b Backend, providers []Provider, groups []string, logger *common.Logger) (*Registry, error) {
	known := make(map[string]bool, len(providers))
	for _, p := range providers {
		known[p.Group] = true
	}
	selected := make(map[string]bool, len(groups))
	var unknown []string
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if !known[g] {
			unknown = append(unknown, g)
			continue
		}
		selected[g] = true
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown tool groups %s (valid: %s)", strings.Join(unknown, ", "), strings.Join(GroupNames(providers), ", "))
	}

	reg := NewRegistry()
	for _, p := range providers {
		if len(selected) > 0 && !selected[p.Group] {
			continue
		}
		for _, ct := range p.Tools {
			ct.Group = p.Group
			if err := ValidateCatalogTool(ct); err != nil {
				return nil, err
			}

			tool := BuildMCPTool(ct)
			var handler server.ToolHandlerFunc
			if ct.Custom != nil {
				handler = ct.Custom(b, ct)
			} else {
				validator, err := newArgsValidator(tool)
				if err != nil {
					return nil, err
				}
				handler = GenericToolHandler(b, ct, validator, logger)
			}

			if err := reg.Register(Descriptor{
				Name:        ct.Name,
				Description: ct.Description,
				Group:       p.Group,
				ReadOnly:    ct.ReadOnly,
				Tool:        tool,
				Handler:     handler,
			}); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug().Int("tools", reg.Len()).Int("read_only", len(reg.Filter(ReadOnlyOnly))).Msg("tool registry built")
	return reg, nil
}
