package main

import (
	"testing"

	"github.com/delaneyj/deptrack/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	doc, parent := chain(3)
	assert.Equal(t, "next.next.next", parent)

	root := observe.MakeReactive(observe.NewSystem(), doc)
	w, err := observe.NewWatcher(root, parent+".value", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Value())
	assert.Equal(t, 4, w.Deps(), "should track every level plus the leaf")
}
