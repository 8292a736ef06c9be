package observe

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Snapshot returns a plain deep copy of v. Nodes become map[string]any,
// including keys stored after conversion. Nothing is tracked.
//
// A node, map or slice reached again from inside itself is copied as nil.
func Snapshot(v any) any {
	return snapshot(v, map[any]struct{}{})
}

// snapshot copies v; path holds the containers currently being copied.
func snapshot(v any, path map[any]struct{}) any {
	id, ok := identity(v)
	if ok {
		if _, cyclic := path[id]; cyclic {
			return nil
		}
		path[id] = struct{}{}
		defer delete(path, id)
	}

	switch v := v.(type) {
	case *Node:
		m := make(map[string]any, v.Len())
		v.Range(func(key string, value any, _ bool) bool {
			m[key] = snapshot(value, path)
			return true
		})
		return m
	case map[string]any:
		m := make(map[string]any, len(v))
		for key, value := range v {
			m[key] = snapshot(value, path)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, value := range v {
			s[i] = snapshot(value, path)
		}
		return s
	default:
		return v
	}
}

func identity(v any) (any, bool) {
	switch v := v.(type) {
	case *Node:
		return v, v != nil
	case map[string]any:
		if v == nil {
			return nil, false
		}
		return reflect.ValueOf(v).UnsafePointer(), true
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		return sliceID{&v[0], len(v)}, true
	default:
		return nil, false
	}
}

type sliceID struct {
	first *any
	n     int
}

// Digest hashes the content of v. Two trees with equal snapshots have equal
// digests regardless of which keys are tracked.
func Digest(v any) uint64 {
	d := xxhash.New()
	writeCanonical(d, Snapshot(v))
	return d.Sum64()
}

func writeCanonical(d *xxhash.Digest, v any) {
	switch v := v.(type) {
	case nil:
		d.WriteString("null")
	case map[string]any:
		d.WriteString("{")
		for _, key := range slices.Sorted(maps.Keys(v)) {
			d.WriteString(strconv.Quote(key))
			d.WriteString(":")
			writeCanonical(d, v[key])
			d.WriteString(",")
		}
		d.WriteString("}")
	case []any:
		d.WriteString("[")
		for _, value := range v {
			writeCanonical(d, value)
			d.WriteString(",")
		}
		d.WriteString("]")
	case string:
		d.WriteString(strconv.Quote(v))
	default:
		fmt.Fprintf(d, "%T(%v)", v, v)
	}
}
