package bkgen

import (
	"fmt"

	"github.com/arthur-debert/bkgen/pkg/config"
	"github.com/arthur-debert/bkgen/pkg/guid"
	"github.com/spf13/cobra"
)

func newGUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "guid <namespace> <scope> <data>",
		Short:   MsgGUIDShort,
		Long:    MsgGUIDLong,
		GroupID: "misc",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := guid.ParseNamespace(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), guid.Derive(ns, args[1], args[2]))
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
		},
	}
}
