package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version metadata, set at compile time via ldflags.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "readyprobe %s (commit %s, built %s)\n", version, commit, buildDate)
	},
}
