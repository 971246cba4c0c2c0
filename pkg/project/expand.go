package project

import (
	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/target"
)

// ExpandReferences returns a copy of p in which every Reference has been
// replaced by the value it points to. Markup writers only accept expanded
// projects. p itself is left untouched.
func (p *Project) ExpandReferences() (*Project, error) {
	e := &expander{project: p, active: make(map[expr.Reference]bool)}

	out := make([]*target.Target, 0, len(p.targets))
	for _, t := range p.targets {
		expanded := t
		for _, name := range t.Properties() {
			v, _ := t.Get(name)
			if !expr.HasReferences(v) {
				continue
			}
			nv, err := e.expand(v)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrUnresolvedReference,
					"target %s: property %s", t.ID, name).
					WithDetail("target", t.ID).
					WithDetail("property", name)
			}
			expanded = expanded.With(name, nv)
		}
		out = append(out, expanded)
	}
	return New(p.Name, out...)
}

type expander struct {
	project *Project
	active  map[expr.Reference]bool
}

func (e *expander) expand(v expr.Value) (expr.Value, error) {
	switch v := v.(type) {
	case expr.Reference:
		if e.active[v] {
			return nil, errors.Newf(errors.ErrUnresolvedReference, "reference cycle through %s", v)
		}
		resolved, ok := e.project.Lookup(v.Target, v.Property)
		if !ok {
			return nil, errors.Newf(errors.ErrUnresolvedReference, "%s does not exist", v)
		}
		e.active[v] = true
		defer delete(e.active, v)
		return e.expand(resolved)
	case expr.List:
		items, err := e.expandAll(v.Items)
		if err != nil {
			return nil, err
		}
		return expr.List{Items: items}, nil
	case expr.Concat:
		items, err := e.expandAll(v.Items)
		if err != nil {
			return nil, err
		}
		return expr.Concat{Items: items}, nil
	default:
		return v, nil
	}
}

func (e *expander) expandAll(in []expr.Value) ([]expr.Value, error) {
	out := make([]expr.Value, len(in))
	for i, item := range in {
		v, err := e.expand(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SpliceListReferences returns a copy of p in which every list item that
// refers to a list-valued property is replaced by that list, so that list
// items keep their identity before reference resolution is deferred to the
// writer. References to other values, and those that cannot be resolved, are
// kept as they are. p itself is left untouched.
func (p *Project) SpliceListReferences() (*Project, error) {
	e := &expander{project: p, active: make(map[expr.Reference]bool)}

	out := make([]*target.Target, 0, len(p.targets))
	for _, t := range p.targets {
		spliced := t
		for _, name := range t.Properties() {
			v, _ := t.Get(name)
			list, ok := v.(expr.List)
			if !ok || !expr.HasReferences(list) {
				continue
			}
			nv, err := e.splice(list)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrUnresolvedReference,
					"target %s: property %s", t.ID, name).
					WithDetail("target", t.ID).
					WithDetail("property", name)
			}
			spliced = spliced.With(name, nv)
		}
		out = append(out, spliced)
	}
	return New(p.Name, out...)
}

func (e *expander) splice(v expr.Value) (expr.Value, error) {
	switch v := v.(type) {
	case expr.Reference:
		if e.active[v] {
			return nil, errors.Newf(errors.ErrUnresolvedReference, "reference cycle through %s", v)
		}
		resolved, ok := e.project.Lookup(v.Target, v.Property)
		if !ok {
			return v, nil
		}
		e.active[v] = true
		defer delete(e.active, v)
		out, err := e.splice(resolved)
		if err != nil {
			return nil, err
		}
		if _, isList := out.(expr.List); isList {
			return out, nil
		}
		return v, nil
	case expr.List:
		items := make([]expr.Value, len(v.Items))
		for i, item := range v.Items {
			out, err := e.splice(item)
			if err != nil {
				return nil, err
			}
			items[i] = out
		}
		return expr.List{Items: items}, nil
	default:
		return v, nil
	}
}
