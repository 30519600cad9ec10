package monitoring

import (
	"context"
	"time"

	"go.uber.org/zap"

	"focuswatch/sink"
)

// DefaultPollInterval is the poll cadence used when the configuration
// does not specify one.
const DefaultPollInterval = 10 * time.Millisecond

// Tracker polls the platform for the foreground window and emits one
// formatted event per focus change. All state lives on the struct; the
// polling loop is the only goroutine touching it, so no locking is
// needed.
type Tracker struct {
	api      WindowAPI
	index    *ProcessIndex
	out      sink.Sink
	logger   *zap.Logger
	interval time.Duration

	// Last handle observed. tracking is false only before the first
	// observation.
	last     Handle
	tracking bool

	stopChan chan struct{}
}

// NewTracker creates a focus tracker. A non-positive interval falls
// back to DefaultPollInterval.
func NewTracker(api WindowAPI, index *ProcessIndex, out sink.Sink, logger *zap.Logger, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Tracker{
		api:      api,
		index:    index,
		out:      out,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Run polls at the fixed interval until ctx is cancelled or Stop is
// called. Resolution failures degrade individual events; they never end
// the loop.
func (t *Tracker) Run(ctx context.Context) error {
	t.logger.Info("Focus tracker started",
		zap.Duration("poll_interval", t.interval))

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Focus tracker context cancelled")
			return ctx.Err()
		case <-t.stopChan:
			t.logger.Info("Focus tracker stop signal received")
			return nil
		case <-ticker.C:
			t.poll(time.Now())
		}
	}
}

// Stop asks Run to return.
func (t *Tracker) Stop() {
	close(t.stopChan)
}

// poll runs one observe/compare/resolve/emit cycle.
func (t *Tracker) poll(now time.Time) {
	h, ok := t.api.ForegroundWindow()
	if !ok {
		return
	}
	if t.tracking && h == t.last {
		return
	}
	t.last = h
	t.tracking = true

	pid, ok := t.api.WindowOwnerPID(h)
	if !ok {
		// No pid to key an event on. The handle still advanced above,
		// so a window with an unresolvable owner does not re-fire on
		// every poll.
		t.logger.Debug("Foreground window has no resolvable owner",
			zap.Uint64("handle", uint64(h)))
		return
	}

	t.index.RefreshOne(pid, true)
	rec, ok := t.index.Lookup(pid)
	if !ok {
		// Process exited between handle capture and lookup.
		t.out.Emit(Event{Time: now, PID: pid}.Line())
		return
	}

	ev := Event{
		Time:    now,
		PID:     pid,
		Title:   unknownTitle,
		ExePath: unknownPath,
		Alive:   true,
	}
	if title, ok := t.api.WindowTitle(h); ok {
		ev.Title = title
	}
	if rec.HasPath {
		ev.ExePath = rec.ExePath
	}
	t.out.Emit(ev.Line())
}
