package observe

// Callback receives the freshly resolved value of a watched path.
type Callback func(newValue any) error

// Hooks observes the engine without taking part in it. Implementations must
// not read or write reactive nodes.
type Hooks interface {
	// Tracked is called when w joins dep during collection.
	Tracked(dep *Dep, w *Watcher)
	// Notified is called at the start of every notification pass.
	Notified(dep *Dep, subscribers int)
	// Fired is called after a watcher's callback ran.
	Fired(w *Watcher)
	// Failed is called for every isolated failure.
	Failed(w *Watcher, err error)
}

// NopHooks ignores every event.
type NopHooks struct{}

func (NopHooks) Tracked(*Dep, *Watcher) {}
func (NopHooks) Notified(*Dep, int)     {}
func (NopHooks) Fired(*Watcher)         {}
func (NopHooks) Failed(*Watcher, error) {}
