// Package toolsets defines what a toolset writer receives and produces.
// Writers turn the build nodes of every target into the native files of one
// build tool; the concrete writers live in subpackages.
package toolsets

import (
	"github.com/arthur-debert/bkgen/pkg/config"
	"github.com/arthur-debert/bkgen/pkg/project"
	"github.com/arthur-debert/bkgen/pkg/target"
)

// Document is one generated file. Path is relative to the output directory.
type Document struct {
	Path    string
	Content string
	// Markup is set for hierarchical markup documents that can be
	// re-parsed for verification.
	Markup bool
}

// Subgraph pairs a target with the build nodes its type produced.
type Subgraph struct {
	Target *target.Target
	Nodes  []target.BuildNode
}

// Writer renders the subgraphs of a project for one toolset.
type Writer interface {
	// Toolset returns the toolset identifier passed to target-types.
	Toolset() target.Toolset
	// ExpandsReferences reports whether the writer requires a project with
	// all references expanded.
	ExpandsReferences() bool
	// Write produces the documents. Contract violations abort through
	// errors.Violation.
	Write(p *project.Project, subgraphs []Subgraph) ([]Document, error)
}

// Factory creates a writer for the given configuration.
type Factory func(cfg *config.Config) Writer
