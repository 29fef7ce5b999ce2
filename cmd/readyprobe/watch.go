package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/readyprobe/prober"
	"github.com/jonwraymond/readyprobe/report"
)

var watchFlags struct {
	runFlags
	interval time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch <registry-file>",
	Short: "Re-probe all targets on an interval until interrupted",
	Long: `Watch runs a full probe cycle, prints the report, sleeps for the
interval, and repeats until interrupted. The exit code reflects the last
completed report.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchFlags.register(watchCmd.Flags())
	watchCmd.Flags().DurationVar(&watchFlags.interval, "interval", prober.DefaultWatchInterval, "pause between probe cycles")
}

func runWatch(cmd *cobra.Command, args []string) error {
	batch, err := newBatch(cmd.Flags(), watchFlags.runFlags, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	console := report.NewConsoleReporter(cmd.OutOrStdout())

	var last *report.Report
	for {
		rep := batch.Run(ctx)
		if err := console.Render(rep); err != nil {
			return err
		}
		last = rep

		select {
		case <-ctx.Done():
			log.Info().Msg("watch interrupted")
			if !last.Ready() {
				return &exitError{code: exitCriticalFailure}
			}
			return nil
		case <-time.After(watchFlags.interval):
		}
	}
}
