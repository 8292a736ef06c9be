// Package observe tracks which properties of a nested mapping a computation
// reads and re-runs the computation when one of them is written.
//
// A plain map[string]any is converted with MakeReactive into a tree of nodes
// whose keys are tracked cells. A Watcher resolves a dot-delimited path while
// occupying its system's tracking slot, so every cell it passes records it.
// Writing a cell with a different value updates each recorded watcher
// synchronously, in subscription order.
package observe

import (
	"io"
	"log/slog"
)

// OnErrorFunc receives a failure isolated during a notification pass, along
// with the watcher that failed.
type OnErrorFunc func(from *Watcher, err error)

// Option configures a System.
type Option func(*System)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(sys *System) {
		if logger != nil {
			sys.logger = logger
		}
	}
}

// WithErrorHandler registers fn to be called once for every failure isolated
// during a notification pass.
func WithErrorHandler(fn OnErrorFunc) Option {
	return func(sys *System) {
		sys.onError = fn
	}
}

// WithHooks installs instrumentation. The default does nothing.
func WithHooks(hooks Hooks) Option {
	return func(sys *System) {
		if hooks != nil {
			sys.hooks = hooks
		}
	}
}

// System holds the slot naming the watcher currently collecting dependencies.
// Every node and watcher belongs to exactly one System. A System is not safe
// for concurrent use; collection and notification run on the caller's
// goroutine from start to finish.
type System struct {
	active *Watcher

	logger  *slog.Logger
	onError OnErrorFunc
	hooks   Hooks

	depIDs     uint64
	watcherIDs uint64
}

func NewSystem(opts ...Option) *System {
	sys := &System{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		hooks:  NopHooks{},
	}
	for _, opt := range opts {
		opt(sys)
	}
	return sys
}

// Tracking returns the watcher currently collecting dependencies, or nil.
func (sys *System) Tracking() *Watcher {
	return sys.active
}

// Untracked runs fn with tracking paused. Reads inside fn register nothing.
func (sys *System) Untracked(fn func()) {
	prev := sys.active
	sys.active = nil
	defer func() {
		sys.active = prev
	}()
	fn()
}

// collect runs fn with w occupying the tracking slot. The previous occupant is
// restored on every exit path, panics included.
func (sys *System) collect(w *Watcher, fn func() (any, error)) (any, error) {
	prev := sys.active
	sys.active = w
	defer func() {
		sys.active = prev
	}()
	return fn()
}

func (sys *System) reportError(w *Watcher, err error) {
	sys.hooks.Failed(w, err)
	if sys.onError != nil {
		sys.onError(w, err)
	}
	if w != nil {
		sys.logger.Warn("watcher update failed", "path", w.expr, "watcher", w.id, "err", err)
		return
	}
	sys.logger.Warn("reactive update failed", "err", err)
}
