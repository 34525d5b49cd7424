// v2
// file: internal/runner.go
package internal

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// runner drives the refresh loop and shares the latest snapshot with the
// HTTP layer. Only the published snapshot is guarded; the refresh itself is
// a pure function of the config and the file system.
type runner struct {
	log    *slog.Logger
	cfg    Config
	health *Health
	pub    *publisher

	mu     sync.RWMutex
	latest Snapshot
}

func newRunner(log *slog.Logger, cfg Config, health *Health, pub *publisher) *runner {
	return &runner{log: log, cfg: cfg, health: health, pub: pub}
}

// run refreshes once immediately, then on every tick until ctx is done.
func (r *runner) run(ctx context.Context) {
	r.refresh(ctx)
	ticker := time.NewTicker(r.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("runner_stop")
			r.pub.close()
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *runner) refresh(ctx context.Context) {
	snap := Refresh(r.log, r.cfg)

	r.mu.Lock()
	r.latest = snap
	r.mu.Unlock()

	r.health.Tick()
	if len(snap.Errors) > 0 {
		r.health.Error()
	}
	if r.pub != nil {
		if err := r.pub.publish(ctx, snap); err != nil {
			r.log.Error("publish_err", "snapshot", snap.ID, "err", err)
		}
	}
}

// Latest returns the most recently completed snapshot.
func (r *runner) Latest() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}
