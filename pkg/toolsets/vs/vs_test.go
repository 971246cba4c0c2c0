package vs

import (
	"strings"
	"testing"

	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/project"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
	"github.com/arthur-debert/bkgen/pkg/xmlfmt"
	"github.com/arthur-debert/bkgen/pkg/testutil"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	helloGUID  = "{8B3E7742-99D3-5197-8F87-FED04F8CBD6D}"
	filterGUID = "{3478BB6C-3285-50B6-B250-C8AC171339F9}"
	folderGUID = "{BE9FE058-4D68-5459-9681-D03C4473C794}"
)

func testOptions() Options {
	return Options{
		Configurations: []string{"Debug", "Release"},
		Platform:       "Win32",
	}
}

func helloProject(t *testing.T) (*project.Project, []toolsets.Subgraph) {
	t.Helper()
	hello := target.New("hello", "action", nil)
	p, err := project.New("demo", hello)
	require.NoError(t, err)
	return p, []toolsets.Subgraph{{
		Target: hello,
		Nodes: []target.BuildNode{{
			Name:     "hello",
			Commands: []expr.Value{expr.Lit("@echo hi"), expr.Lit("@echo <bye>")},
		}},
	}}
}

func parse(t *testing.T, doc string) *etree.Document {
	t.Helper()
	require.NoError(t, xmlfmt.Validate(doc))
	d := etree.NewDocument()
	require.NoError(t, d.ReadFromString(doc))
	return d
}

func TestPolicy(t *testing.T) {
	p := Policy()
	assert.Equal(t, "a;b", p.Format(expr.Strings("a", "b")))
	assert.Equal(t, "true", p.Format(expr.BoolOf(true)))
	assert.Equal(t, "false", p.Format(expr.BoolOf(false)))
	testutil.RequireViolation(t, func() { p.Format(expr.Ref("hello", "commands")) })
}

func TestWriter_Documents(t *testing.T) {
	p, subgraphs := helloProject(t)
	w := New(testOptions())
	assert.Equal(t, Toolset, w.Toolset())
	assert.True(t, w.ExpandsReferences())

	docs, err := w.Write(p, subgraphs)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "hello.vcxproj", docs[0].Path)
	assert.True(t, docs[0].Markup)
	assert.Equal(t, "hello.vcxproj.filters", docs[1].Path)
	assert.True(t, docs[1].Markup)
	assert.Equal(t, "demo.sln", docs[2].Path)
	assert.False(t, docs[2].Markup)
}

func TestWriter_Project(t *testing.T) {
	p, subgraphs := helloProject(t)
	docs, err := New(testOptions()).Write(p, subgraphs)
	require.NoError(t, err)

	content := docs[0].Content
	assert.True(t, strings.HasPrefix(content, xmlfmt.Header))

	root := parse(t, content).Root()
	require.NotNil(t, root)
	assert.Equal(t, "Project", root.Tag)
	assert.Equal(t, "Build", root.SelectAttrValue("DefaultTargets", ""))

	confs := root.FindElements("./ItemGroup[@Label='ProjectConfigurations']/ProjectConfiguration")
	require.Len(t, confs, 2)
	assert.Equal(t, "Debug|Win32", confs[0].SelectAttrValue("Include", ""))
	assert.Equal(t, "Release|Win32", confs[1].SelectAttrValue("Include", ""))

	guid := root.FindElement("./PropertyGroup[@Label='Globals']/ProjectGuid")
	require.NotNil(t, guid)
	assert.Equal(t, helloGUID, guid.Text())

	debug := root.FindElements("./PropertyGroup[@Label='Configuration']/UseDebugLibraries")
	require.Len(t, debug, 2)
	assert.Equal(t, "true", debug[0].Text())
	assert.Equal(t, "false", debug[1].Text())

	cmds := root.FindElements("./PropertyGroup/NMakeBuildCommandLine")
	require.Len(t, cmds, 2)
	assert.Equal(t, "@echo hi\n@echo <bye>", cmds[0].Text())
	assert.Contains(t, content, "@echo &lt;bye&gt;")

	// No outputs, so the NMakeOutput leaf is omitted.
	assert.Empty(t, root.FindElements("./PropertyGroup/NMakeOutput"))
}

func TestWriter_Filters(t *testing.T) {
	p, subgraphs := helloProject(t)
	docs, err := New(testOptions()).Write(p, subgraphs)
	require.NoError(t, err)

	root := parse(t, docs[1].Content).Root()
	filter := root.FindElement("./ItemGroup/Filter[@Include='Source Files']")
	require.NotNil(t, filter)
	assert.Equal(t, filterGUID, filter.FindElement("UniqueIdentifier").Text())
}

func TestWriter_Deterministic(t *testing.T) {
	p, subgraphs := helloProject(t)
	w := New(testOptions())
	first, err := w.Write(p, subgraphs)
	require.NoError(t, err)
	second, err := w.Write(p, subgraphs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriter_Solution(t *testing.T) {
	p, subgraphs := helloProject(t)
	docs, err := New(testOptions()).Write(p, subgraphs)
	require.NoError(t, err)

	want := "Microsoft Visual Studio Solution File, Format Version 11.00\n" +
		"# Visual Studio 2010\n" +
		`Project("{8BC9CEB8-8B4A-11D0-8D11-00A0C91BC942}") = "hello", "hello.vcxproj", "` + helloGUID + "\"\n" +
		"EndProject\n" +
		"Global\n" +
		"\tGlobalSection(SolutionConfigurationPlatforms) = preSolution\n" +
		"\t\tDebug|Win32 = Debug|Win32\n" +
		"\t\tRelease|Win32 = Release|Win32\n" +
		"\tEndGlobalSection\n" +
		"\tGlobalSection(ProjectConfigurationPlatforms) = postSolution\n" +
		"\t\t" + helloGUID + ".Debug|Win32.ActiveCfg = Debug|Win32\n" +
		"\t\t" + helloGUID + ".Debug|Win32.Build.0 = Debug|Win32\n" +
		"\t\t" + helloGUID + ".Release|Win32.ActiveCfg = Release|Win32\n" +
		"\t\t" + helloGUID + ".Release|Win32.Build.0 = Release|Win32\n" +
		"\tEndGlobalSection\n" +
		"\tGlobalSection(SolutionProperties) = preSolution\n" +
		"\t\tHideSolutionNode = FALSE\n" +
		"\tEndGlobalSection\n" +
		"EndGlobal\n"
	assert.Equal(t, want, docs[2].Content)
}

func TestWriter_SolutionFolder(t *testing.T) {
	p, subgraphs := helloProject(t)
	opts := testOptions()
	opts.SolutionFolder = "Targets"
	docs, err := New(opts).Write(p, subgraphs)
	require.NoError(t, err)

	sln := docs[2].Content
	assert.Contains(t, sln, `Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "Targets", "Targets", "`+folderGUID+`"`)
	assert.Contains(t, sln, "\tGlobalSection(NestedProjects) = preSolution\n\t\t"+helloGUID+" = "+folderGUID+"\n")
}

func TestWriter_OutputsAndReferencesRejected(t *testing.T) {
	hello := target.New("hello", "action", nil)
	p, err := project.New("demo", hello)
	require.NoError(t, err)
	w := New(testOptions())

	docs, err := w.Write(p, []toolsets.Subgraph{{Target: hello, Nodes: []target.BuildNode{{
		Name:     "hello",
		Commands: []expr.Value{expr.Lit("@touch out.txt")},
		Outputs:  []string{"out.txt"},
	}}}})
	require.NoError(t, err)
	out := parse(t, docs[0].Content).Root().FindElement("./PropertyGroup/NMakeOutput")
	require.NotNil(t, out)
	assert.Equal(t, "out.txt", out.Text())

	testutil.RequireViolation(t, func() {
		_, _ = w.Write(p, []toolsets.Subgraph{{Target: hello, Nodes: []target.BuildNode{{
			Name:     "hello",
			Commands: []expr.Value{expr.Ref("other", "commands")},
		}}}})
	})
}
