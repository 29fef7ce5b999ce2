package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/jonwraymond/readyprobe/prober"
)

var serveFlags struct {
	runFlags
	interval time.Duration
	listen   string
}

var serveCmd = &cobra.Command{
	Use:   "serve <registry-file>",
	Short: "Expose readiness over HTTP, re-probing on an interval",
	Long: `Serve probes the registry on an interval and exposes the latest result:

  /healthz  liveness of the prober itself
  /readyz   200 when every critical target is healthy, 503 otherwise
  /report   the latest JSON report
  /metrics  prometheus metrics (with --metrics-exporter=prometheus)`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveFlags.register(serveCmd.Flags())
	serveCmd.Flags().DurationVar(&serveFlags.interval, "interval", prober.DefaultWatchInterval, "pause between probe cycles")
	serveCmd.Flags().StringVar(&serveFlags.listen, "listen", ":8787", "address to serve on")
}

func runServe(cmd *cobra.Command, args []string) error {
	batch, err := newBatch(cmd.Flags(), serveFlags.runFlags, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	watcher := prober.NewWatcher(batch, serveFlags.interval)
	go watcher.Run(ctx)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/healthz", prober.LivenessHandler())
	r.Get("/readyz", prober.ReadinessHandler(watcher))
	r.Get("/report", prober.ReportHandler(watcher))
	if obs.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", obs.MetricsHandler)
	}

	srv := &http.Server{
		Addr:              serveFlags.listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()
	log.Info().
		Str("addr", serveFlags.listen).
		Dur("interval", serveFlags.interval).
		Msg("serving readiness")

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return configError(err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
	return nil
}
