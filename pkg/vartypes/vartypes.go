// Package vartypes declares the value types a target-type property can have
// and converts raw manifest data into typed expr values.
package vartypes

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
)

// Type describes the values a property accepts.
type Type interface {
	// Name is the human readable type name, e.g. "list of strings".
	Name() string
	// Validate checks an already typed value. References are accepted by
	// every type; they are checked once expanded.
	Validate(v expr.Value) error
	// FromRaw converts decoded manifest data (TOML/YAML) into a value.
	FromRaw(raw any) (expr.Value, error)
}

var referencePattern = regexp.MustCompile(`^\$\{([A-Za-z0-9_.-]+)\.([A-Za-z0-9_-]+)\}$`)

// parseReference recognizes strings of the form ${target.property}.
func parseReference(s string) (expr.Reference, bool) {
	m := referencePattern.FindStringSubmatch(s)
	if m == nil {
		return expr.Reference{}, false
	}
	return expr.Ref(m[1], m[2]), true
}

func typeError(t Type, v any) error {
	return errors.Newf(errors.ErrPropertyType, "expected %s, got %s", t.Name(), describe(v))
}

func describe(v any) string {
	switch v := v.(type) {
	case expr.Value:
		return fmt.Sprintf("%T %s", v, v)
	case nil:
		return "nothing"
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}

// StringType accepts text.
type StringType struct{}

func (StringType) Name() string { return "string" }

func (t StringType) Validate(v expr.Value) error {
	switch v.(type) {
	case expr.Literal, expr.Reference, expr.Concat:
		return nil
	}
	return typeError(t, v)
}

func (t StringType) FromRaw(raw any) (expr.Value, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, typeError(t, raw)
	}
	if ref, ok := parseReference(s); ok {
		return ref, nil
	}
	return expr.Lit(s), nil
}

// BoolType accepts booleans.
type BoolType struct{}

func (BoolType) Name() string { return "bool" }

func (t BoolType) Validate(v expr.Value) error {
	switch v.(type) {
	case expr.Bool, expr.Reference:
		return nil
	}
	return typeError(t, v)
}

func (t BoolType) FromRaw(raw any) (expr.Value, error) {
	switch raw := raw.(type) {
	case bool:
		return expr.BoolOf(raw), nil
	case string:
		if ref, ok := parseReference(raw); ok {
			return ref, nil
		}
	}
	return nil, typeError(t, raw)
}

// ListType accepts a list whose items all have type Item.
type ListType struct {
	Item Type
}

func (t ListType) Name() string { return "list of " + t.Item.Name() + "s" }

func (t ListType) Validate(v expr.Value) error {
	switch v := v.(type) {
	case expr.Reference:
		return nil
	case expr.List:
		for i, item := range v.Items {
			if err := t.Item.Validate(item); err != nil {
				return errors.Wrapf(err, errors.ErrPropertyType, "item %d", i)
			}
		}
		return nil
	}
	return typeError(t, v)
}

// FromRaw accepts a sequence or, for convenience, a single item which becomes
// a one-element list. A reference is always an item, never the whole list,
// so list properties of a resolved target are always expr.List values.
func (t ListType) FromRaw(raw any) (expr.Value, error) {
	items, ok := raw.([]any)
	if !ok {
		item, err := t.Item.FromRaw(raw)
		if err != nil {
			return nil, typeError(t, raw)
		}
		return expr.ListOf(item), nil
	}
	list := expr.List{Items: make([]expr.Value, 0, len(items))}
	for i, r := range items {
		v, err := t.Item.FromRaw(r)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPropertyType, "item %d", i)
		}
		list.Items = append(list.Items, v)
	}
	return list, nil
}

var (
	_ Type = StringType{}
	_ Type = BoolType{}
	_ Type = ListType{}
)
