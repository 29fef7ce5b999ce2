package prober

import (
	"encoding/json"
	"net/http"

	"github.com/jonwraymond/readyprobe/report"
)

// LivenessHandler returns an HTTP handler for liveness probes.
// It only says the prober process itself is running.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// ReadinessHandler returns an HTTP handler gating on the watcher's latest
// report: 200 when every critical target is healthy, 503 otherwise or
// before the first run completes.
func ReadinessHandler(watcher *Watcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")

		rep := watcher.Latest()
		switch {
		case rep == nil:
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("PENDING"))
		case rep.Ready():
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT READY"))
		}
	}
}

// ReportHandler returns an HTTP handler serving the latest report as JSON.
// The status code mirrors readiness so automation can gate on either.
func ReportHandler(watcher *Watcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		rep := watcher.Latest()
		if rep == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "no report yet",
			})
			return
		}

		if rep.Ready() {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = report.EncodeJSON(w, rep)
	}
}
