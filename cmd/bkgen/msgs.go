package bkgen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate native build files from a project description"
	MsgGenerateShort   = "Generate build files for the configured toolsets"
	MsgTypesShort      = "List the available target types"
	MsgDescribeShort   = "Show the documentation of a target type"
	MsgGUIDShort       = "Derive a stable GUID"
	MsgGUIDLong        = "Derive the GUID bkgen would use for <data> in <scope>. Namespaces: project, group, internal."
	MsgConfigShort     = "Print the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDocumentWritten = "✔ %s\n"
	MsgDocumentHeader  = "==> %s <==\n"
	MsgGeneratedFormat = "Generated %d file(s) for %d toolset(s)."
	MsgVersionFormat   = "bkgen version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrRenderTable = "failed to render table: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStdout    = "Print the generated files instead of writing them"
	MsgFlagOutputDir = "Directory to write into (default: output_dir from the configuration)"
	MsgFlagToolset   = "Toolset to generate, repeatable (default: toolsets from the configuration)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")
)
