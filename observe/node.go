package observe

import (
	"maps"
	"slices"
)

// Node is a mapping whose keys were converted to tracked cells when the node
// was built. Keys stored after conversion are kept but never tracked.
type Node struct {
	sys   *System
	keys  []string
	cells map[string]*cell
	loose map[string]any
}

type cell struct {
	value any
	dep   *Dep
}

// MakeReactive converts root into a reactive node. Nested map[string]any
// values are converted first, depth-first, so every level is tracked before
// its parent key is installed. Values that are already nodes are kept as they
// are; slices and scalars are leaves.
//
// root itself is not modified. The returned node is the source of truth from
// here on.
func MakeReactive(sys *System, root map[string]any) *Node {
	n := &Node{
		sys:   sys,
		keys:  make([]string, 0, len(root)),
		cells: make(map[string]*cell, len(root)),
	}
	for _, key := range slices.Sorted(maps.Keys(root)) {
		n.install(key, root[key])
	}
	return n
}

func (n *Node) install(key string, value any) {
	n.cells[key] = &cell{
		value: n.sys.reactive(value),
		dep:   newDep(n.sys, key),
	}
	n.keys = append(n.keys, key)
}

func (sys *System) reactive(v any) any {
	if m, ok := v.(map[string]any); ok {
		return MakeReactive(sys, m)
	}
	return v
}

// System returns the system the node was built with.
func (n *Node) System() *System {
	return n.sys
}

// Get reads key. If a watcher is collecting dependencies the read subscribes
// it to key's registry.
func (n *Node) Get(key string) (any, bool) {
	c, ok := n.cells[key]
	if !ok {
		v, ok := n.loose[key]
		return v, ok
	}
	if w := n.sys.active; w != nil {
		w.track(c.dep)
	}
	return c.value, true
}

// Peek reads key without subscribing anyone.
func (n *Node) Peek(key string) (any, bool) {
	if c, ok := n.cells[key]; ok {
		return c.value, true
	}
	v, ok := n.loose[key]
	return v, ok
}

// Set writes key. For a tracked key nothing happens when value is strictly
// equal to the current one; otherwise mapping values are made reactive, the
// value is stored and every subscriber is updated before Set returns. The
// error joins the failures isolated during that pass.
//
// Keys that were not present at conversion are stored untracked.
func (n *Node) Set(key string, value any) error {
	c, ok := n.cells[key]
	if !ok {
		if n.loose == nil {
			n.loose = map[string]any{}
		}
		n.loose[key] = value
		return nil
	}
	if same(c.value, value) {
		return nil
	}
	c.value = n.sys.reactive(value)
	return c.dep.notify()
}

func (n *Node) Has(key string) bool {
	if _, ok := n.cells[key]; ok {
		return true
	}
	_, ok := n.loose[key]
	return ok
}

// Tracked reports whether key was converted to a tracked cell.
func (n *Node) Tracked(key string) bool {
	_, ok := n.cells[key]
	return ok
}

// Keys returns the tracked keys in sorted order.
func (n *Node) Keys() []string {
	return slices.Clone(n.keys)
}

func (n *Node) Len() int {
	return len(n.cells) + len(n.loose)
}

// Dep returns the registry of a tracked key, or nil.
func (n *Node) Dep(key string) *Dep {
	if c, ok := n.cells[key]; ok {
		return c.dep
	}
	return nil
}

// Range calls fn for every key without tracking, tracked keys first, both
// groups in sorted order. Iteration stops when fn returns false.
func (n *Node) Range(fn func(key string, value any, tracked bool) bool) {
	for _, key := range n.keys {
		if !fn(key, n.cells[key].value, true) {
			return
		}
	}
	for _, key := range slices.Sorted(maps.Keys(n.loose)) {
		if !fn(key, n.loose[key], false) {
			return
		}
	}
}
