package observe

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// Dep is the registry of watchers subscribed to one reactive property.
//
// Registration is deduplicated by watcher identity: a property read twice
// during one collection is recorded once, and every distinct subscriber is
// updated once per write, in the order it first subscribed.
type Dep struct {
	sys *System
	id  uint64
	key string

	subs    []*Watcher
	members mapset.Set[*Watcher]
}

func newDep(sys *System, key string) *Dep {
	sys.depIDs++
	return &Dep{
		sys:     sys,
		id:      sys.depIDs,
		key:     key,
		members: mapset.NewThreadUnsafeSet[*Watcher](),
	}
}

// ID is unique within the owning System.
func (d *Dep) ID() uint64 {
	return d.id
}

// Key is the property name this registry guards.
func (d *Dep) Key() string {
	return d.key
}

// Len is the number of subscribed watchers.
func (d *Dep) Len() int {
	return len(d.subs)
}

// Subscribers returns a copy of the subscriber list in notification order.
func (d *Dep) Subscribers() []*Watcher {
	subs := make([]*Watcher, len(d.subs))
	copy(subs, d.subs)
	return subs
}

func (d *Dep) depend(w *Watcher) {
	if d.members.Contains(w) {
		return
	}
	d.members.Add(w)
	d.subs = append(d.subs, w)
	d.sys.hooks.Tracked(d, w)
}

func (d *Dep) remove(w *Watcher) {
	if !d.members.Contains(w) {
		return
	}
	d.members.Remove(w)
	for i, sub := range d.subs {
		if sub == w {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return
		}
	}
}

// notify updates every subscriber synchronously. A failing subscriber does
// not stop the pass; all failures are joined into the returned error.
//
// A callback that writes a node and returns the error of that nested pass
// fails with failures that were already reported, so it is not reported
// again.
func (d *Dep) notify() error {
	if len(d.subs) == 0 {
		return nil
	}

	// subscribers may join or leave while the pass runs
	subs := d.Subscribers()
	d.sys.hooks.Notified(d, len(subs))

	var errs []error
	for _, w := range subs {
		if w.disposed {
			continue
		}
		if err := w.Update(); err != nil {
			var nested *passError
			if !errors.As(err, &nested) {
				d.sys.reportError(w, err)
			}
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &passError{errs: errs}
}

// passError joins the failures of one notification pass.
type passError struct {
	errs []error
}

func (e *passError) Error() string {
	return errors.Join(e.errs...).Error()
}

func (e *passError) Unwrap() []error {
	return e.errs
}
