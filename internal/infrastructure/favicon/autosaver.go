// Package favicon provides the background machinery of the icon cache:
// debounced flushing, the store write queue, image encoding and the
// placeholder icon.
package favicon

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/logging"
)

const (
	defaultAutosaveDelay    = time.Second
	defaultAutosaveMaxDelay = 30 * time.Second
)

// Autosaver debounces icon flushes.
// Each change restarts the quiet period, but a save is never deferred
// beyond maxDelay after the first unsaved change.
type Autosaver struct {
	delay    time.Duration
	maxDelay time.Duration
	now      func() time.Time

	mu         sync.Mutex
	handler    func(context.Context)
	timer      *time.Timer
	dirty      bool
	firstDirty time.Time
	ctx        context.Context
	cancel     context.CancelFunc

	// serializes handler runs between the timer and SaveNow
	saving sync.Mutex
}

var _ port.FlushScheduler = (*Autosaver)(nil)

// NewAutosaver creates an autosaver. Non-positive durations use the defaults.
func NewAutosaver(delay, maxDelay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = defaultAutosaveDelay
	}
	if maxDelay <= 0 {
		maxDelay = defaultAutosaveMaxDelay
	}
	if maxDelay < delay {
		maxDelay = delay
	}
	return &Autosaver{
		delay:    delay,
		maxDelay: maxDelay,
		now:      time.Now,
	}
}

// SetSaveHandler registers the function run when the quiet period ends.
func (a *Autosaver) SetSaveHandler(handler func(context.Context)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = handler
}

// Start enables timer-driven saves. Handlers run with a context derived from ctx.
func (a *Autosaver) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ctx, a.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().
		Dur("delay", a.delay).
		Dur("max_delay", a.maxDelay).
		Msg("autosaver started")
}

// Stop disables timer-driven saves and runs any pending save with ctx.
// A timer save already running finishes with its own context first.
func (a *Autosaver) Stop(ctx context.Context) {
	a.mu.Lock()
	cancel := a.cancel
	a.ctx, a.cancel = nil, nil
	a.mu.Unlock()

	a.SaveNow(ctx)
	if cancel != nil {
		cancel()
	}
}

// ChangeOccurred marks the cache dirty and (re)arms the save timer.
func (a *Autosaver) ChangeOccurred() {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	if !a.dirty {
		a.dirty = true
		a.firstDirty = now
	}

	wait := a.delay
	if remaining := a.maxDelay - now.Sub(a.firstDirty); remaining < wait {
		wait = max(remaining, 0)
	}

	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(wait, a.fire)
}

// SaveNow cancels the timer and saves immediately if anything changed.
func (a *Autosaver) SaveNow(ctx context.Context) {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	a.save(ctx)
}

// Dirty reports whether a save is pending.
func (a *Autosaver) Dirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	ctx := a.ctx
	a.mu.Unlock()

	// Not started, or already stopped: the change waits for SaveNow.
	if ctx == nil {
		return
	}
	a.save(ctx)
}

func (a *Autosaver) save(ctx context.Context) {
	a.saving.Lock()
	defer a.saving.Unlock()

	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	a.dirty = false
	handler := a.handler
	a.mu.Unlock()

	if handler == nil {
		return
	}
	logging.FromContext(ctx).Debug().Msg("autosave triggered")
	handler(ctx)
}
