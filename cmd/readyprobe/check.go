package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/readyprobe/report"
)

var checkFlags struct {
	runFlags
	jsonOut string
	quiet   bool
}

var checkCmd = &cobra.Command{
	Use:   "check <registry-file>",
	Short: "Probe every target once and report readiness",
	Long: `Check runs the retry policy against every target in the registry file
and prints a per-target breakdown plus a summary.

The exit code gates automation: 0 when every critical target is healthy,
1 when any critical target failed, 2 on configuration errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkFlags.register(checkCmd.Flags())
	checkCmd.Flags().StringVar(&checkFlags.jsonOut, "json-out", "", "write the JSON report to this path")
	checkCmd.Flags().BoolVar(&checkFlags.quiet, "quiet", false, "suppress the console report")
}

func runCheck(cmd *cobra.Command, args []string) error {
	batch, err := newBatch(cmd.Flags(), checkFlags.runFlags, args[0])
	if err != nil {
		return err
	}

	rep := batch.Run(cmd.Context())

	if !checkFlags.quiet {
		if err := report.NewConsoleReporter(cmd.OutOrStdout()).Render(rep); err != nil {
			return err
		}
	}

	if checkFlags.jsonOut != "" {
		if err := report.WriteJSONFile(checkFlags.jsonOut, rep); err != nil {
			return &exitError{
				code: exitCriticalFailure,
				err:  fmt.Errorf("writing %s: %w", checkFlags.jsonOut, err),
			}
		}
		log.Info().Str("path", checkFlags.jsonOut).Msg("json report written")
	}

	if !rep.Ready() {
		return &exitError{code: exitCriticalFailure}
	}
	return nil
}
