package vs

import (
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/project"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
	"github.com/arthur-debert/bkgen/pkg/xmlfmt"
)

// Toolset is the identifier of this toolset.
const Toolset target.Toolset = "vs2010"

// Policy returns the formatting policy for Visual Studio files. References
// must have been expanded before values reach it.
func Policy() *expr.Policy {
	return &expr.Policy{
		Name:      "Visual Studio",
		Separator: ";",
		True:      "true",
		False:     "false",
	}
}

// Options configures the writer.
type Options struct {
	Configurations []string
	Platform       string
	// SolutionFolder nests every project under a solution folder when set.
	SolutionFolder string
}

// Writer produces one project (plus filters) per target and a solution.
type Writer struct {
	opts Options
	xml  *xmlfmt.Formatter
}

// New creates a Visual Studio writer.
func New(opts Options) *Writer {
	return &Writer{
		opts: opts,
		xml:  xmlfmt.New(Policy()),
	}
}

// Toolset implements toolsets.Writer.
func (w *Writer) Toolset() target.Toolset { return Toolset }

// ExpandsReferences implements toolsets.Writer.
func (w *Writer) ExpandsReferences() bool { return true }

// Write implements toolsets.Writer.
func (w *Writer) Write(p *project.Project, subgraphs []toolsets.Subgraph) ([]toolsets.Document, error) {
	docs := make([]toolsets.Document, 0, 2*len(subgraphs)+1)
	projects := make([]slnProject, 0, len(subgraphs))

	for _, sg := range subgraphs {
		proj := w.newProject(p.Name, sg)
		projects = append(projects, slnProject{Name: sg.Target.ID, File: proj.File, GUID: proj.GUID})

		docs = append(docs,
			toolsets.Document{Path: proj.File, Content: w.xml.Format(proj.Tree()), Markup: true},
			toolsets.Document{Path: proj.File + ".filters", Content: w.xml.Format(proj.Filters()), Markup: true},
		)
	}

	docs = append(docs, toolsets.Document{
		Path:    p.Name + ".sln",
		Content: w.solution(p.Name, projects),
	})
	return docs, nil
}

var _ toolsets.Writer = (*Writer)(nil)
