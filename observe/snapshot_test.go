package observe_test

import (
	"testing"

	"github.com/delaneyj/deptrack/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	sys := observe.NewSystem()
	plain := map[string]any{
		"person": map[string]any{"name": "Tom", "tags": []any{"a", map[string]any{"b": 1}}},
	}
	root := observe.MakeReactive(sys, plain)
	require.NoError(t, observe.AssignPath(root, "person.late", true))

	w, err := observe.NewWatcher(root, "person.name", nil)
	require.NoError(t, err)

	snap := observe.Snapshot(root)
	assert.Equal(t, map[string]any{
		"person": map[string]any{
			"name": "Tom",
			"late": true,
			"tags": []any{"a", map[string]any{"b": 1}},
		},
	}, snap)
	assert.Equal(t, 2, w.Deps(), "snapshots do not track")
}

func TestDigest(t *testing.T) {
	sys := observe.NewSystem()
	root := observe.MakeReactive(sys, map[string]any{
		"person": map[string]any{"name": "Tom", "age": 20},
	})
	plain := map[string]any{
		"person": map[string]any{"age": 20, "name": "Tom"},
	}

	d := observe.Digest(root)
	assert.Equal(t, d, observe.Digest(plain))

	require.NoError(t, observe.AssignPath(root, "person.name", "Tom"))
	assert.Equal(t, d, observe.Digest(root))

	require.NoError(t, observe.AssignPath(root, "person.name", "Jerry"))
	assert.NotEqual(t, d, observe.Digest(root))

	assert.NotEqual(t, observe.Digest(map[string]any{"n": 1}), observe.Digest(map[string]any{"n": "1"}))
	assert.NotEqual(t, observe.Digest(map[string]any{"n": 1}), observe.Digest(map[string]any{"n": 1.0}))
}

func TestSnapshotCycles(t *testing.T) {
	sys := observe.NewSystem()
	root := observe.MakeReactive(sys, map[string]any{"name": "Tom"})
	require.NoError(t, root.Set("self", root))

	assert.Equal(t, map[string]any{"name": "Tom", "self": nil}, observe.Snapshot(root))
	assert.Equal(t, observe.Digest(map[string]any{"name": "Tom", "self": nil}), observe.Digest(root))

	plain := map[string]any{"n": 1}
	plain["loop"] = plain
	list := []any{1, nil}
	list[1] = list
	assert.Equal(t, map[string]any{"n": 1, "loop": nil}, observe.Snapshot(plain))
	assert.Equal(t, []any{1, nil}, observe.Snapshot(list))

	// shared, non-cyclic subtrees are copied each time they appear
	shared := map[string]any{"x": 1}
	assert.Equal(t,
		map[string]any{"a": map[string]any{"x": 1}, "b": map[string]any{"x": 1}},
		observe.Snapshot(map[string]any{"a": shared, "b": shared}))
}
