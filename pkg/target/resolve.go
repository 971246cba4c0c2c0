package target

import (
	"sort"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
)

// Resolve builds a Target of type typ from raw manifest values: unknown
// properties are rejected, values are converted with the declared types and
// missing properties take their defaults.
func Resolve(typ Type, id string, raw map[string]any) (*Target, error) {
	if id == "" {
		return nil, errors.New(errors.ErrProjectInvalid, "target id must not be empty")
	}

	declared := make(map[string]Property)
	for _, p := range typ.Properties() {
		declared[p.Name] = p
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make(map[string]expr.Value, len(declared))
	for _, k := range keys {
		p, ok := declared[k]
		if !ok {
			return nil, errors.Newf(errors.ErrProjectInvalid,
				"target %s: unknown property %q for type %s", id, k, typ.Name()).
				WithDetail("target", id).
				WithDetail("property", k)
		}
		v, err := p.Type.FromRaw(raw[k])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPropertyType,
				"target %s: property %s", id, k).
				WithDetail("target", id).
				WithDetail("property", k)
		}
		props[k] = v
	}

	for _, p := range typ.Properties() {
		if _, ok := props[p.Name]; !ok && p.Default != nil {
			props[p.Name] = p.Default
		}
	}

	return New(id, typ.Name(), props), nil
}

// Validate checks every declared property of t against its type.
func Validate(typ Type, t *Target) error {
	for _, p := range typ.Properties() {
		v, ok := t.Get(p.Name)
		if !ok {
			continue
		}
		if err := p.Type.Validate(v); err != nil {
			return errors.Wrapf(err, errors.ErrPropertyType, "target %s: property %s", t.ID, p.Name)
		}
	}
	return nil
}
