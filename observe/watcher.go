package observe

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Watcher binds a path expression under a root to a callback. It caches the
// last resolved value and calls back whenever a write to a property it depends
// on changes that value.
//
// Dependencies are collected again on every update, so a watcher follows its
// path when the structure underneath is replaced. Registrations it no longer
// reads are dropped after each successful update.
type Watcher struct {
	sys  *System
	id   uint64
	root any
	expr string
	path Path
	cb   Callback

	old any

	// registries joined, and the ones read during the collection in progress
	deps mapset.Set[*Dep]
	seen mapset.Set[*Dep]

	disposed bool
}

// NewWatcher watches expr under root using the system root was built with.
func NewWatcher(root *Node, expr string, cb Callback) (*Watcher, error) {
	if root == nil {
		return nil, &PathError{Op: "watch", Path: expr, Err: ErrNotContainer}
	}
	return WatchOn(root.sys, root, expr, cb)
}

// WatchOn watches expr under root within sys. root may be any value
// ResolvePath accepts; only nodes contribute dependencies.
//
// The initial value is resolved with the watcher collecting dependencies. If
// that resolution fails, the registrations made so far are undone and the
// PathError is returned.
func WatchOn(sys *System, root any, expr string, cb Callback) (*Watcher, error) {
	p, err := ParsePath(expr)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		cb = func(any) error { return nil }
	}

	sys.watcherIDs++
	w := &Watcher{
		sys:  sys,
		id:   sys.watcherIDs,
		root: root,
		expr: expr,
		path: p,
		cb:   cb,
		deps: mapset.NewThreadUnsafeSet[*Dep](),
	}

	v, err := w.get()
	if err != nil {
		w.Dispose()
		return nil, err
	}
	w.old = v
	sys.logger.Debug("watcher created", "path", expr, "watcher", w.id, "deps", w.deps.Cardinality())
	return w, nil
}

func (w *Watcher) ID() uint64 {
	return w.id
}

func (w *Watcher) Path() string {
	return w.expr
}

// Value returns the cached value from the last resolution.
func (w *Watcher) Value() any {
	return w.old
}

// Deps returns how many registries the watcher is subscribed to.
func (w *Watcher) Deps() int {
	return w.deps.Cardinality()
}

func (w *Watcher) Disposed() bool {
	return w.disposed
}

// Update resolves the path again. When the value differs from the cached one
// the cache is replaced and the callback runs with the new value. The cache is
// replaced before the callback so a callback writing back into the watched
// path sees a consistent watcher.
func (w *Watcher) Update() error {
	if w.disposed {
		return ErrDisposed
	}
	v, err := w.get()
	if err != nil {
		return err
	}
	if same(v, w.old) {
		return nil
	}
	w.old = v
	err = w.invoke(v)
	w.sys.hooks.Fired(w)
	return err
}

// Dispose unsubscribes the watcher from every registry it joined.
func (w *Watcher) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	for _, dep := range w.deps.ToSlice() {
		dep.remove(w)
	}
	w.deps.Clear()
}

func (w *Watcher) get() (any, error) {
	w.seen = mapset.NewThreadUnsafeSet[*Dep]()
	v, err := w.sys.collect(w, func() (any, error) {
		return w.path.resolve(w.root, w.expr)
	})
	seen := w.seen
	w.seen = nil
	if err != nil {
		// keep everything so repairing the path fires the watcher
		return nil, err
	}

	for _, dep := range w.deps.ToSlice() {
		if !seen.Contains(dep) {
			dep.remove(w)
			w.deps.Remove(dep)
		}
	}
	return v, nil
}

func (w *Watcher) track(dep *Dep) {
	if w.disposed {
		return
	}
	if w.seen != nil {
		w.seen.Add(dep)
	}
	if w.deps.Contains(dep) {
		return
	}
	w.deps.Add(dep)
	dep.depend(w)
}

func (w *Watcher) invoke(v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackError{Path: w.expr, Watcher: w.id, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if cbErr := w.cb(v); cbErr != nil {
		return &CallbackError{Path: w.expr, Watcher: w.id, Err: cbErr}
	}
	return nil
}
