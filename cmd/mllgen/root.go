package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mllgen",
	Short: "mllgen — render document trees into HTML, XML, or JSON",
	Long: `mllgen reads a declarative document tree from a YAML or JSON file and
renders it through the mllwriter writers.

Usage:
  mllgen render <tree.(yaml|json)> [flags]`,
}

// execute runs the root command.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
