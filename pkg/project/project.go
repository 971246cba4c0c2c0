// Package project holds a resolved set of targets and loads it from a TOML or
// YAML manifest.
package project

import (
	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/target"
)

// Project is an ordered collection of resolved targets.
type Project struct {
	Name    string
	targets []*target.Target
	byID    map[string]*target.Target
}

// New creates a project. Target ids must be unique.
func New(name string, targets ...*target.Target) (*Project, error) {
	if name == "" {
		return nil, errors.New(errors.ErrProjectInvalid, "project name must not be empty")
	}
	p := &Project{
		Name:    name,
		targets: make([]*target.Target, 0, len(targets)),
		byID:    make(map[string]*target.Target, len(targets)),
	}
	for _, t := range targets {
		if _, dup := p.byID[t.ID]; dup {
			return nil, errors.Newf(errors.ErrProjectInvalid, "duplicate target id %q", t.ID).
				WithDetail("target", t.ID)
		}
		p.targets = append(p.targets, t)
		p.byID[t.ID] = t
	}
	return p, nil
}

// Targets returns the targets in declaration order.
func (p *Project) Targets() []*target.Target {
	return p.targets
}

// Target returns the target with the given id.
func (p *Project) Target(id string) (*target.Target, bool) {
	t, ok := p.byID[id]
	return t, ok
}

// Lookup returns the value of property on target targetID.
func (p *Project) Lookup(targetID, property string) (expr.Value, bool) {
	t, ok := p.byID[targetID]
	if !ok {
		return nil, false
	}
	return t.Get(property)
}
