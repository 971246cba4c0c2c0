package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/bkgen/cmd/bkgen"
	"github.com/arthur-debert/bkgen/internal/version"
	"github.com/arthur-debert/bkgen/pkg/core"
)

func main() {
	core.MustInitialize()
	rootCmd := bkgen.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "BKGEN",
		Section: "1",
		Source:  "bkgen " + version.Version,
		Manual:  "bkgen manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
