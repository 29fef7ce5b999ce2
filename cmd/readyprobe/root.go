package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonwraymond/readyprobe/observe"
)

// Exit codes are the tool's contract with calling automation.
const (
	exitOK              = 0
	exitCriticalFailure = 1
	exitConfigError     = 2
)

// exitError carries the process exit code alongside the cause. A nil cause
// means the reason is already visible in the report output.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return "critical targets failing"
}

func (e *exitError) Unwrap() error { return e.err }

func configError(err error) error {
	return &exitError{code: exitConfigError, err: err}
}

var (
	logLevel        string
	logFormat       string
	metricsExporter string
	traceExporter   string

	// log and obs are populated by PersistentPreRunE and shared with all
	// subcommands.
	log zerolog.Logger
	obs *observe.Observer
)

var rootCmd = &cobra.Command{
	Use:   "readyprobe",
	Short: "Readiness prober for named service endpoints",
	Long: `readyprobe checks whether a named set of network services are
reachable and healthy, with bounded retries and a per-target report.

Targets come from a YAML or JSON registry file; each entry names either a
host:port (TCP connect check) or a URL with an optional health path
(HTTP status check). Targets marked critical gate the exit code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	pf.StringVar(&metricsExporter, "metrics-exporter", "none", "metrics exporter (stdout, otlp, prometheus, none)")
	pf.StringVar(&traceExporter, "trace-exporter", "none", "trace exporter (stdout, otlp, none)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		log = observe.NewLogger(os.Stderr, logLevel, logFormat)

		var err error
		obs, err = observe.New(cmd.Context(), observe.Config{
			ServiceName:     "readyprobe",
			Version:         version,
			MetricsExporter: metricsExporter,
			TraceExporter:   traceExporter,
		})
		if err != nil {
			return configError(err)
		}
		return nil
	}

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute is the entry point called by main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	if obs != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if serr := obs.Shutdown(shutdownCtx); serr != nil {
			log.Error().Err(serr).Msg("telemetry shutdown failed")
		}
		cancel()
	}

	if err == nil {
		return
	}

	var xerr *exitError
	if errors.As(err, &xerr) {
		if xerr.err != nil {
			log.Error().Err(xerr.err).Msg("readyprobe failed")
		}
		stop()
		os.Exit(xerr.code) //nolint:gocritic // deferred stop already called
	}

	// Anything unclassified (bad flags, unreadable files) is a
	// configuration problem: nothing was probed.
	log.Error().Err(err).Msg("readyprobe failed")
	stop()
	os.Exit(exitConfigError)
}
