// Package gnu writes GNU makefiles.
package gnu

import (
	"slices"
	"sort"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/project"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
)

// Toolset is the identifier of this toolset.
const Toolset target.Toolset = "gnu"

// Banner is the first line of every generated makefile.
const Banner = "# This file was generated by bkgen. Do not modify, all changes will be overwritten!"

// reservedRules are rule names every generated makefile defines itself.
var reservedRules = []string{"all", ".PHONY"}

// maxReferenceDepth bounds reference chains followed while formatting.
const maxReferenceDepth = 32

// LookupFunc resolves target.property to a value.
type LookupFunc func(targetID, property string) (expr.Value, bool)

// Policy returns the makefile formatting policy. References are resolved
// through lookup; those it cannot resolve become make variable references
// named after the property.
func Policy(lookup LookupFunc) *expr.Policy {
	depth := 0
	return &expr.Policy{
		Name:      "makefile",
		Separator: " ",
		True:      "1",
		False:     "0",
		Reference: func(f expr.Formatter, r expr.Reference) string {
			if lookup == nil {
				return "$(" + r.Property + ")"
			}
			v, ok := lookup(r.Target, r.Property)
			if !ok {
				return "$(" + r.Property + ")"
			}
			depth++
			defer func() { depth-- }()
			errors.Assert(depth <= maxReferenceDepth, "makefile output: reference %s nests too deeply", r)
			return f.Format(v)
		},
	}
}

// Writer produces a single makefile for the whole project.
type Writer struct {
	Makefile string
}

// New creates a makefile writer.
func New(makefile string) *Writer {
	return &Writer{Makefile: makefile}
}

// Toolset implements toolsets.Writer.
func (w *Writer) Toolset() target.Toolset { return Toolset }

// ExpandsReferences implements toolsets.Writer. Makefiles resolve references
// while formatting.
func (w *Writer) ExpandsReferences() bool { return false }

// Write implements toolsets.Writer.
func (w *Writer) Write(p *project.Project, subgraphs []toolsets.Subgraph) ([]toolsets.Document, error) {
	f := Policy(p.Lookup)

	var all, phony []string
	var rules strings.Builder
	for _, sg := range subgraphs {
		if slices.Contains(reservedRules, sg.Target.ID) {
			return nil, errors.Newf(errors.ErrProjectInvalid,
				"target id %q clashes with a generated makefile rule", sg.Target.ID).
				WithDetail("target", sg.Target.ID).
				WithDetail("toolset", string(Toolset))
		}
		all = append(all, sg.Target.ID)
		phony = append(phony, sg.Target.ID)

		var outputs []string
		for _, n := range sg.Nodes {
			outputs = append(outputs, writeRule(&rules, f, n)...)
		}
		if !slices.Contains(outputs, sg.Target.ID) {
			// alias rule so that `make <target id>` always works
			rules.WriteString(joinRule(sg.Target.ID, outputs) + "\n")
		}
	}
	sort.Strings(phony)

	var sb strings.Builder
	sb.WriteString(Banner + "\n\n")
	sb.WriteString(joinRule("all", all) + "\n")
	sb.WriteString(rules.String())
	sb.WriteString(joinRule(".PHONY", append([]string{"all"}, phony...)))

	return []toolsets.Document{{Path: w.Makefile, Content: sb.String()}}, nil
}

func joinRule(name string, deps []string) string {
	var sb strings.Builder
	sb.WriteString(name + ":")
	for _, d := range deps {
		sb.WriteString(" " + d)
	}
	sb.WriteString("\n")
	return sb.String()
}

// writeRule writes one rule and returns the names other rules can depend on.
func writeRule(sb *strings.Builder, f expr.Formatter, n target.BuildNode) []string {
	targets := n.Outputs
	if len(targets) == 0 {
		targets = []string{n.Name}
	}
	sb.WriteString(strings.Join(targets, " ") + ":")
	for _, in := range n.Inputs {
		sb.WriteString(" " + in)
	}
	sb.WriteString("\n")
	for _, c := range n.Commands {
		sb.WriteString("\t" + f.Format(c) + "\n")
	}
	sb.WriteString("\n")
	return targets
}

var _ toolsets.Writer = (*Writer)(nil)
