package observe_test

import (
	"testing"

	"github.com/delaneyj/deptrack/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	plain := map[string]any{"a": map[string]any{"b": 1}}
	sys := observe.NewSystem()
	node := observe.MakeReactive(sys, map[string]any{"a": map[string]any{"b": 1}})

	for _, root := range []any{plain, node} {
		v, err := observe.ResolvePath(root, "a.b")
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		_, err = observe.ResolvePath(root, "a.x")
		require.Error(t, err)
		assert.ErrorIs(t, err, observe.ErrNoSuchKey)
		var pathErr *observe.PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "resolve", pathErr.Op)
		assert.Equal(t, 1, pathErr.Segment)
		assert.Equal(t, "x", pathErr.Key)
		assert.Equal(t, `resolve "a.x": segment 1 ("x"): no such key`, err.Error())

		_, err = observe.ResolvePath(root, "a.b.c")
		assert.ErrorIs(t, err, observe.ErrNotContainer)
	}
}

func TestResolvePathThroughSlices(t *testing.T) {
	sys := observe.NewSystem()
	root := observe.MakeReactive(sys, map[string]any{
		"items": []any{"zero", map[string]any{"name": "one"}},
	})

	v, err := observe.ResolvePath(root, "items.1.name")
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	for _, expr := range []string{"items.2", "items.-1", "items.x"} {
		_, err = observe.ResolvePath(root, expr)
		assert.ErrorIs(t, err, observe.ErrNoSuchKey, expr)
	}
}

func TestParsePath(t *testing.T) {
	p, err := observe.ParsePath("person.address.city")
	require.NoError(t, err)
	assert.Equal(t, observe.Path{"person", "address", "city"}, p)
	assert.Equal(t, "person.address.city", p.String())

	for _, expr := range []string{"", ".", "a.", ".a", "a..b"} {
		_, err := observe.ParsePath(expr)
		assert.ErrorIs(t, err, observe.ErrInvalidPath, expr)
	}
}

func TestAssignPath(t *testing.T) {
	sys := observe.NewSystem()
	root := observe.MakeReactive(sys, map[string]any{
		"person": map[string]any{"name": "Tom"},
		"plain":  []any{map[string]any{"k": 1}},
		"leaf":   "text",
	})

	calls := []any{}
	_, err := observe.NewWatcher(root, "person.name", func(v any) error {
		calls = append(calls, v)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, observe.AssignPath(root, "person.name", "Jerry"))
	assert.Equal(t, []any{"Jerry"}, calls)

	// plain containers below a slice are written without tracking
	require.NoError(t, observe.AssignPath(root, "plain.0.k", 2))
	v, err := observe.ResolvePath(root, "plain.0.k")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, observe.AssignPath(root, "plain.0", "replaced"))
	v, _ = observe.ResolvePath(root, "plain.0")
	assert.Equal(t, "replaced", v)
}

func TestAssignPathSkipsNonContainers(t *testing.T) {
	sys := observe.NewSystem()
	root := observe.MakeReactive(sys, map[string]any{
		"leaf":  "text",
		"items": []any{1},
	})
	before := observe.Digest(root)

	for _, tc := range []struct {
		expr    string
		cause   error
		segment int
	}{
		{"leaf.x", observe.ErrNotContainer, 1},
		{"leaf.x.y", observe.ErrNotContainer, 1},
		{"missing.x", observe.ErrNoSuchKey, 0},
		{"items.5", observe.ErrNoSuchKey, 1},
	} {
		err := observe.AssignPath(root, tc.expr, 1)
		require.Error(t, err, tc.expr)
		assert.ErrorIs(t, err, observe.ErrAssignmentSkipped, tc.expr)
		assert.ErrorIs(t, err, tc.cause, tc.expr)
		var pathErr *observe.PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "assign", pathErr.Op)
		assert.Equal(t, tc.segment, pathErr.Segment, tc.expr)
	}

	assert.Equal(t, before, observe.Digest(root), "nothing was assigned")

	assert.ErrorIs(t, observe.AssignPath(root, "a..b", 1), observe.ErrInvalidPath)
}

func TestAssignPathToNewKeyIsUntracked(t *testing.T) {
	sys := observe.NewSystem()
	root := observe.MakeReactive(sys, map[string]any{"person": map[string]any{}})

	require.NoError(t, observe.AssignPath(root, "person.nick", "tj"))
	v, err := observe.ResolvePath(root, "person.nick")
	require.NoError(t, err)
	assert.Equal(t, "tj", v)

	p, _ := root.Peek("person")
	assert.False(t, p.(*observe.Node).Tracked("nick"))
}
