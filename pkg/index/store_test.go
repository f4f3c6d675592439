package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplace(t *testing.T) {
	first := NewNode()
	first.Ensure([]string{"array"}).SetVariant(Basic, 1)

	store := NewStore(first)
	assert.Equal(t, uint64(1), store.Generation())
	assert.Same(t, first, store.Current())

	var notified *Node
	store.Subscribe(func(n *Node) { notified = n })

	second := NewNode()
	second.Ensure([]string{"string"}).SetVariant(Basic, 1)
	store.Replace(second)

	assert.Equal(t, uint64(2), store.Generation())
	assert.Same(t, second, store.Current())
	assert.Same(t, second, notified, "subscriber sees the new tree")
}

func TestStoreIgnoresNil(t *testing.T) {
	root := NewNode()
	store := NewStore(root)
	store.Replace(nil)

	assert.Same(t, root, store.Current())
	assert.Equal(t, uint64(1), store.Generation())
}

func TestStoreNilRoot(t *testing.T) {
	store := NewStore(nil)
	require.NotNil(t, store.Current(), "empty store still serves a tree")
	assert.Empty(t, store.Current().Keys())
}

// A reader holding a snapshot keeps seeing it after a swap.
func TestStoreSnapshotStability(t *testing.T) {
	first := NewNode()
	first.Ensure([]string{"array"}).SetVariant(Basic, 1)
	store := NewStore(first)

	held := store.Current()
	store.Replace(NewNode())

	assert.Equal(t, []string{"array"}, held.Keys())
}
