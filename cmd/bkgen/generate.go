package bkgen

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/bkgen/pkg/config"
	"github.com/arthur-debert/bkgen/pkg/core"
	"github.com/arthur-debert/bkgen/pkg/emit"
	"github.com/arthur-debert/bkgen/pkg/generate"
	"github.com/arthur-debert/bkgen/pkg/project"
	"github.com/arthur-debert/bkgen/pkg/style"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		toStdout     bool
		outputDir    string
		toolsetNames []string
	)

	cmd := &cobra.Command{
		Use:     "generate <manifest>",
		Short:   MsgGenerateShort,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := args[0]
			projectDir := filepath.Dir(manifest)

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("toolset") {
				overrides["toolsets"] = toolsetNames
			}
			if outputDir != "" {
				overrides["output_dir"] = outputDir
			}

			cfg, err := config.LoadWithOverrides(projectDir, overrides)
			if err != nil {
				return err
			}
			if outputDir == "" && !filepath.IsAbs(cfg.OutputDir) {
				cfg.OutputDir = filepath.Join(projectDir, cfg.OutputDir)
			}

			p, err := project.Load(manifest, core.TargetTypes())
			if err != nil {
				return err
			}

			results, err := generate.Run(cfg, p, core.TargetTypes(), core.Toolsets())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var docs []toolsets.Document
			for _, r := range results {
				docs = append(docs, r.Documents...)
			}

			if toStdout {
				for _, doc := range docs {
					fmt.Fprintf(out, MsgDocumentHeader, doc.Path)
					fmt.Fprint(out, doc.Content)
				}
				return nil
			}

			emitter, err := emit.New(cfg.OutputDir)
			if err != nil {
				return err
			}
			written, err := emitter.Write(cmd.Context(), docs)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintf(out, MsgDocumentWritten, style.PathStyle.Render(path))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, style.SuccessStyle.Render(fmt.Sprintf(MsgGeneratedFormat, len(written), len(results))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, MsgFlagStdout)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", MsgFlagOutputDir)
	cmd.Flags().StringSliceVarP(&toolsetNames, "toolset", "t", nil, MsgFlagToolset)
	return cmd
}
