// v2
// file: internal/health.go
package internal

import (
	"sync/atomic"
	"time"
)

// Health tracks liveness based on last refresh and last error times.
type Health struct {
	RefreshMs int64
	lastTick  atomic.Int64
	lastErr   atomic.Int64
}

func NewHealth(interval time.Duration) *Health {
	h := &Health{RefreshMs: interval.Milliseconds()}
	h.lastTick.Store(time.Now().UnixMilli())
	h.lastErr.Store(0)
	return h
}

func (h *Health) Tick()  { h.lastTick.Store(time.Now().UnixMilli()) }
func (h *Health) Error() { h.lastErr.Store(time.Now().UnixMilli()) }

// Healthy returns true if we've refreshed recently and no very recent errors.
func (h *Health) Healthy() (bool, map[string]any) {
	now := time.Now().UnixMilli()
	age := now - h.lastTick.Load()
	errAge := int64(-1)
	if e := h.lastErr.Load(); e > 0 {
		errAge = now - e
	}
	thr := 3 * h.RefreshMs
	ok := age <= thr && (h.lastErr.Load() == 0 || errAge > thr)
	st := map[string]any{"ok": ok, "lastRefreshAgeMs": age, "lastErrorAgeMs": errAge, "refreshMs": h.RefreshMs}
	return ok, st
}
