package target

import (
	"sort"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/vartypes"
)

// Toolset identifies the native build tool or IDE format being generated.
type Toolset string

// IDProperty is always present on a resolved target and holds its id.
const IDProperty = "id"

// Property is a typed configuration field declared by a target-type.
type Property struct {
	Name        string
	Type        vartypes.Type
	Default     expr.Value
	Inheritable bool
	Doc         string
}

// BuildNode describes the actions to run for (part of) one target.
type BuildNode struct {
	Name     string
	Commands []expr.Value
	Inputs   []string
	Outputs  []string
}

// Type is implemented by every target-type plugin.
type Type interface {
	// Name returns the unique name used in project descriptions.
	Name() string
	// Description returns documentation in markdown.
	Description() string
	// Properties returns the declared properties in declaration order.
	Properties() []Property
	// BuildSubgraph converts t into build nodes for toolset. It must not
	// mutate t or depend on anything but its arguments.
	BuildSubgraph(toolset Toolset, t *Target) []BuildNode
}

// Target is a resolved build unit. It is treated as immutable once created.
type Target struct {
	ID       string
	TypeName string
	props    map[string]expr.Value
}

// New creates a target from already resolved values. The map is copied.
func New(id, typeName string, props map[string]expr.Value) *Target {
	t := &Target{
		ID:       id,
		TypeName: typeName,
		props:    make(map[string]expr.Value, len(props)+1),
	}
	for k, v := range props {
		t.props[k] = v
	}
	t.props[IDProperty] = expr.Lit(id)
	return t
}

// Get returns the value of a property.
func (t *Target) Get(name string) (expr.Value, bool) {
	v, ok := t.props[name]
	return v, ok
}

// MustGet returns the value of a property that resolution guarantees to be
// present.
func (t *Target) MustGet(name string) expr.Value {
	v, ok := t.props[name]
	errors.Assert(ok, "target %s has no property %s", t.ID, name)
	return v
}

// Properties returns the property names in sorted order.
func (t *Target) Properties() []string {
	names := make([]string, 0, len(t.props))
	for k := range t.props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of t with name set to v.
func (t *Target) With(name string, v expr.Value) *Target {
	c := New(t.ID, t.TypeName, t.props)
	c.props[name] = v
	return c
}
