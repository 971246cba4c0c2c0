package vs

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/guid"
)

const (
	cppProjectType    = "{8BC9CEB8-8B4A-11D0-8D11-00A0C91BC942}"
	folderProjectType = "{2150E333-8FDC-42A3-9474-1A3956D46DE8}"
)

type slnProject struct {
	Name string
	File string
	GUID string
}

// solution renders the .sln file. It is line-oriented, so it is written
// directly rather than through a node tree.
func (w *Writer) solution(name string, projects []slnProject) string {
	var sb strings.Builder
	line := func(indent int, format string, args ...any) {
		sb.WriteString(strings.Repeat("\t", indent))
		fmt.Fprintf(&sb, format, args...)
		sb.WriteString("\n")
	}

	line(0, "Microsoft Visual Studio Solution File, Format Version 11.00")
	line(0, "# Visual Studio 2010")
	for _, p := range projects {
		line(0, `Project("%s") = "%s", "%s", "%s"`, cppProjectType, p.Name, p.File, p.GUID)
		line(0, "EndProject")
	}

	var folderGUID string
	if w.opts.SolutionFolder != "" {
		folderGUID = guid.Derive(guid.SolutionGroup, name, w.opts.SolutionFolder)
		line(0, `Project("%s") = "%s", "%s", "%s"`, folderProjectType,
			w.opts.SolutionFolder, w.opts.SolutionFolder, folderGUID)
		line(0, "EndProject")
	}

	line(0, "Global")
	line(1, "GlobalSection(SolutionConfigurationPlatforms) = preSolution")
	for _, c := range w.opts.Configurations {
		cfg := c + "|" + w.opts.Platform
		line(2, "%s = %s", cfg, cfg)
	}
	line(1, "EndGlobalSection")

	line(1, "GlobalSection(ProjectConfigurationPlatforms) = postSolution")
	for _, p := range projects {
		for _, c := range w.opts.Configurations {
			cfg := c + "|" + w.opts.Platform
			line(2, "%s.%s.ActiveCfg = %s", p.GUID, cfg, cfg)
			line(2, "%s.%s.Build.0 = %s", p.GUID, cfg, cfg)
		}
	}
	line(1, "EndGlobalSection")

	line(1, "GlobalSection(SolutionProperties) = preSolution")
	line(2, "HideSolutionNode = FALSE")
	line(1, "EndGlobalSection")

	if folderGUID != "" && len(projects) > 0 {
		line(1, "GlobalSection(NestedProjects) = preSolution")
		for _, p := range projects {
			line(2, "%s = %s", p.GUID, folderGUID)
		}
		line(1, "EndGlobalSection")
	}
	line(0, "EndGlobal")
	return sb.String()
}
