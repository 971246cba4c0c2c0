package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bkgen/cmd/bkgen"
	"github.com/arthur-debert/bkgen/pkg/core"
	"github.com/arthur-debert/bkgen/pkg/style"
)

func main() {
	// Registers target types and toolsets
	core.MustInitialize()

	rootCmd := bkgen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
