package vs

import (
	"strings"

	"github.com/arthur-debert/bkgen/pkg/guid"
	"github.com/arthur-debert/bkgen/pkg/node"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
)

const (
	msbuildNamespace = "http://schemas.microsoft.com/developer/msbuild/2003"
	toolsVersion     = "4.0"
	sourceFilter     = "Source Files"
	sourceExtensions = "cpp;c;cc;cxx;def;odl;idl;hpj;bat;asm;asmx"
)

// vcxProject is one generated .vcxproj.
type vcxProject struct {
	Name string
	File string
	GUID string

	opts     Options
	commands []string
	output   string
}

func (w *Writer) newProject(solution string, sg toolsets.Subgraph) *vcxProject {
	policy := Policy()

	var commands []string
	var output string
	for _, n := range sg.Nodes {
		for _, c := range n.Commands {
			commands = append(commands, policy.Format(c))
		}
		if output == "" && len(n.Outputs) > 0 {
			output = n.Outputs[0]
		}
	}

	return &vcxProject{
		Name:     sg.Target.ID,
		File:     sg.Target.ID + ".vcxproj",
		GUID:     guid.Derive(guid.Project, solution, sg.Target.ID),
		opts:     w.opts,
		commands: commands,
		output:   output,
	}
}

func (p *vcxProject) condition(config string) string {
	return "'$(Configuration)|$(Platform)'=='" + config + "|" + p.opts.Platform + "'"
}

// Tree builds the project document.
func (p *vcxProject) Tree() *node.Node {
	root := node.New("Project",
		node.A("DefaultTargets", "Build"),
		node.A("ToolsVersion", toolsVersion),
		node.A("xmlns", msbuildNamespace),
	)

	configs := root.AddElement("ItemGroup", node.A("Label", "ProjectConfigurations"))
	for _, c := range p.opts.Configurations {
		pc := configs.AddElement("ProjectConfiguration", node.A("Include", c+"|"+p.opts.Platform))
		pc.AddValue("Configuration", node.String(c))
		pc.AddValue("Platform", node.String(p.opts.Platform))
	}

	globals := root.AddElement("PropertyGroup", node.A("Label", "Globals"))
	globals.AddValue("ProjectGuid", node.String(p.GUID))
	globals.AddValue("Keyword", node.String("MakeFileProj"))
	globals.AddValue("RootNamespace", node.String(p.Name))

	root.AddElement("Import", node.A("Project", `$(VCTargetsPath)\Microsoft.Cpp.Default.props`))
	for _, c := range p.opts.Configurations {
		pg := root.AddElement("PropertyGroup", node.A("Condition", p.condition(c)), node.A("Label", "Configuration"))
		pg.AddValue("ConfigurationType", node.String("Makefile"))
		pg.AddValue("UseDebugLibraries", node.Bool(strings.HasPrefix(c, "Debug")))
	}
	root.AddElement("Import", node.A("Project", `$(VCTargetsPath)\Microsoft.Cpp.props`))
	root.AddElement("ImportGroup", node.A("Label", "ExtensionSettings"))

	for _, c := range p.opts.Configurations {
		ig := root.AddElement("ImportGroup", node.A("Label", "PropertySheets"), node.A("Condition", p.condition(c)))
		ig.AddElement("Import",
			node.A("Project", `$(UserRootDir)\Microsoft.Cpp.$(Platform).user.props`),
			node.A("Condition", `exists('$(UserRootDir)\Microsoft.Cpp.$(Platform).user.props')`),
			node.A("Label", "LocalAppDataPlatform"),
		)
	}
	root.AddElement("PropertyGroup", node.A("Label", "UserMacros"))

	for _, c := range p.opts.Configurations {
		pg := root.AddElement("PropertyGroup", node.A("Condition", p.condition(c)))
		pg.AddValue("NMakeBuildCommandLine", node.String(strings.Join(p.commands, "\n")))
		pg.AddValue("NMakeOutput", node.String(p.output))
	}

	root.AddElement("Import", node.A("Project", `$(VCTargetsPath)\Microsoft.Cpp.targets`))
	root.AddElement("ImportGroup", node.A("Label", "ExtensionTargets"))
	return root
}

// Filters builds the companion .vcxproj.filters document.
func (p *vcxProject) Filters() *node.Node {
	root := node.New("Project", node.A("ToolsVersion", toolsVersion), node.A("xmlns", msbuildNamespace))
	filter := root.AddElement("ItemGroup").AddElement("Filter", node.A("Include", sourceFilter))
	filter.AddValue("UniqueIdentifier", node.String(guid.Derive(guid.Internal, p.Name, sourceFilter)))
	filter.AddValue("Extensions", node.String(sourceExtensions))
	return root
}
