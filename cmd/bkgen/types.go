package bkgen

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/core"
	"github.com/arthur-debert/bkgen/pkg/style"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "types",
		Short:   MsgTypesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			err := core.TargetTypes().Each(func(name string, typ target.Type) error {
				rows = append(rows, []string{name, summary(typ.Description())})
				return nil
			})
			if err != nil {
				return err
			}

			table, err := style.Table([]string{"TYPE", "DESCRIPTION"}, rows)
			if err != nil {
				return fmt.Errorf(MsgErrRenderTable, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "describe <type>",
		Short:     MsgDescribeShort,
		GroupID:   "core",
		Args:      cobra.ExactArgs(1),
		ValidArgs: core.TargetTypes().List(),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := core.TargetTypes().Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), style.Markdown(describe(typ), 0))
			return nil
		},
	}
}

// summary returns the first line of a markdown description.
func summary(description string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	return line
}

// describe renders the documentation of typ as markdown.
func describe(typ target.Type) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n%s\n\n## Properties\n\n", typ.Name(), strings.TrimSpace(typ.Description()))
	sb.WriteString("| Name | Type | Default | Description |\n")
	sb.WriteString("|------|------|---------|-------------|\n")
	for _, p := range typ.Properties() {
		def := ""
		if p.Default != nil {
			def = "`" + p.Default.String() + "`"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", p.Name, p.Type.Name(), def, p.Doc)
	}
	return sb.String()
}
