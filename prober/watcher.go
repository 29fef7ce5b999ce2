package prober

import (
	"context"
	"sync"
	"time"

	"github.com/jonwraymond/readyprobe/report"
)

// DefaultWatchInterval is used when no interval is configured.
const DefaultWatchInterval = 30 * time.Second

// Watcher re-probes the registry on a fixed interval, retaining the most
// recent report for the HTTP surface.
type Watcher struct {
	batch    *Batch
	interval time.Duration

	mu     sync.RWMutex
	latest *report.Report
}

// NewWatcher creates a watcher around a batch prober.
func NewWatcher(batch *Batch, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{batch: batch, interval: interval}
}

// Run probes immediately, then on every interval tick until ctx ends.
func (w *Watcher) Run(ctx context.Context) {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// Latest returns the most recent report, or nil before the first run
// completes.
func (w *Watcher) Latest() *report.Report {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

func (w *Watcher) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	rep := w.batch.Run(ctx)

	w.mu.Lock()
	w.latest = rep
	w.mu.Unlock()
}
