package action

import (
	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/arthur-debert/bkgen/pkg/vartypes"
)

// ActionTypeName is the name of the action target-type
const ActionTypeName = "action"

// CommandsProperty holds the commands to run, in order.
const CommandsProperty = "commands"

// SilencePrefix keeps make from echoing a command before running it.
const SilencePrefix = "@"

const description = `Custom action script.

*Action* targets execute arbitrary commands. They can be used to do various
tasks that don't fit the model of compiling or creating files, such as
packaging files, installing, uploading, running tests and so on.

Every command runs silently; make does not echo it first.

` + "```toml" + `
[[targets]]
id = "osx-bundle"
type = "action"
[targets.properties]
commands = ["mkdir -p Test.app/Contents/MacOS", "cp -f test Test.app/Contents/MacOS/test"]
` + "```\n"

// ActionType runs a list of commands.
type ActionType struct{}

// NewActionType creates a new ActionType
func NewActionType() *ActionType {
	return &ActionType{}
}

// Name returns the unique name of this target-type
func (a *ActionType) Name() string {
	return ActionTypeName
}

// Description returns a human-readable description
func (a *ActionType) Description() string {
	return description
}

// Properties returns the declared properties
func (a *ActionType) Properties() []target.Property {
	return []target.Property{
		{
			Name:        CommandsProperty,
			Type:        vartypes.ListType{Item: vartypes.StringType{}},
			Default:     expr.ListOf(),
			Inheritable: false,
			Doc:         "List of commands to run.",
		},
	}
}

// BuildSubgraph returns a single node named after the target whose commands
// are the target's commands with SilencePrefix prepended. The toolset does
// not influence the result.
func (a *ActionType) BuildSubgraph(toolset target.Toolset, t *target.Target) []target.BuildNode {
	cmds, ok := t.MustGet(CommandsProperty).(expr.List)
	errors.Assert(ok, "target %s: %s is not a resolved list", t.ID, CommandsProperty)

	return []target.BuildNode{{
		Name:     t.ID,
		Commands: expr.AddPrefix(SilencePrefix, cmds).Items,
	}}
}

var _ target.Type = (*ActionType)(nil)
