package mst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLeafUpdatesRootSum(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
	})
	require.NoError(t, err)

	err = tr.SetLeaf(NewLeaf("alice", 500), 0)
	require.NoError(t, err)

	sum, err := tr.RootSum()
	require.NoError(t, err)
	require.Equal(t, int32(700), sum)
}

func TestSetLeafProofStillVerifies(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
		NewLeaf("carol", 150),
		NewLeaf("dave", 75),
	})
	require.NoError(t, err)

	require.NoError(t, tr.SetLeaf(NewLeaf("bob", 999), 1))

	proof, err := tr.GetProof(1)
	require.NoError(t, err)
	ok, err := tr.VerifyProof(*proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSetLeafOutOfBounds(t *testing.T) {
	tr, err := New([]Leaf{NewLeaf("alice", 100)})
	require.NoError(t, err)

	err = tr.SetLeaf(NewLeaf("bob", 1), 5)
	var oob *IndexOutOfBounds
	require.ErrorAs(t, err, &oob)
}

func TestSetLeafAtomicOnOverflow(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", math.MaxInt32),
		NewLeaf("bob", 0),
	})
	require.NoError(t, err)

	rootBefore, err := tr.Root()
	require.NoError(t, err)
	leafBefore, err := tr.Leaf(1)
	require.NoError(t, err)

	err = tr.SetLeaf(NewLeaf("bob", 1), 1)
	require.ErrorIs(t, err, ErrOverflow)

	rootAfter, err := tr.Root()
	require.NoError(t, err)
	leafAfter, err := tr.Leaf(1)
	require.NoError(t, err)

	require.True(t, rootBefore.Equal(rootAfter))
	require.Equal(t, leafBefore, leafAfter)
}

func TestSetLeafUpdatesZeroIndex(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
		NewLeaf("carol", 150),
	})
	require.NoError(t, err)
	require.Equal(t, []int{3}, tr.ZeroIndex())

	require.NoError(t, tr.SetLeaf(NewLeaf("dave", 75), 3))
	require.Empty(t, tr.ZeroIndex())

	require.NoError(t, tr.Remove(3))
	require.Equal(t, []int{3}, tr.ZeroIndex())
}

func TestPushFillsZeroSlotFirst(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
		NewLeaf("carol", 150),
	})
	require.NoError(t, err)

	rootBefore, err := tr.Root()
	require.NoError(t, err)

	index, err := tr.Push(NewLeaf("dave", 75))
	require.NoError(t, err)
	require.Equal(t, 3, index)
	require.Len(t, tr.Leafs(), 4)

	sum, err := tr.RootSum()
	require.NoError(t, err)
	require.Equal(t, int32(525), sum)

	// A push into a reused zero slot is a SetLeaf, so removing it again
	// must restore the tree's root bit-exactly (spec.md §8's push/remove
	// round-trip law).
	require.NoError(t, tr.Remove(index))
	rootAfter, err := tr.Root()
	require.NoError(t, err)
	require.True(t, rootBefore.Equal(rootAfter))

	sum, err = tr.RootSum()
	require.NoError(t, err)
	require.Equal(t, int32(450), sum)
}

func TestPushRebuildsWhenFull(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
	})
	require.NoError(t, err)
	require.Empty(t, tr.ZeroIndex())

	index, err := tr.Push(NewLeaf("carol", 150))
	require.NoError(t, err)
	require.Equal(t, 2, index)
	require.Len(t, tr.Leafs(), 4)
	require.Equal(t, 3, tr.Height())

	sum, err := tr.RootSum()
	require.NoError(t, err)
	require.Equal(t, int32(450), sum)

	// A push that triggers a capacity-doubling rebuild does not shrink the
	// tree back down on Remove, but its root must equal the root of a tree
	// built directly from leafs ∪ zero×(new_cap−old_len) (spec.md §8's
	// push/remove law for the rebuild case).
	require.NoError(t, tr.Remove(index))
	rootAfterRemove, err := tr.Root()
	require.NoError(t, err)

	wantTree, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
		NewLeaf(zeroLeafID, 0),
		NewLeaf(zeroLeafID, 0),
	})
	require.NoError(t, err)
	wantRoot, err := wantTree.Root()
	require.NoError(t, err)

	require.True(t, rootAfterRemove.Equal(wantRoot))
}

func TestRemoveClearsLeaf(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
	})
	require.NoError(t, err)

	require.NoError(t, tr.Remove(1))

	leaf, err := tr.Leaf(1)
	require.NoError(t, err)
	require.True(t, leaf.IsZero())

	sum, err := tr.RootSum()
	require.NoError(t, err)
	require.Equal(t, int32(100), sum)
}

// TestRemoveThenSetLeafRestoresRoot exercises spec.md §8's round-trip law:
// remove(i) followed by set_leaf(old_leaf, i) restores the root hash and
// root sum bit-exactly.
func TestRemoveThenSetLeafRestoresRoot(t *testing.T) {
	tr, err := New([]Leaf{
		NewLeaf("alice", 100),
		NewLeaf("bob", 200),
	})
	require.NoError(t, err)

	rootBefore, err := tr.Root()
	require.NoError(t, err)
	oldLeaf, err := tr.Leaf(1)
	require.NoError(t, err)

	require.NoError(t, tr.Remove(1))

	sumAfterRemove, err := tr.RootSum()
	require.NoError(t, err)
	require.Equal(t, int32(100), sumAfterRemove)

	require.NoError(t, tr.SetLeaf(oldLeaf, 1))

	rootAfter, err := tr.Root()
	require.NoError(t, err)
	require.True(t, rootBefore.Equal(rootAfter))

	sumAfter, err := tr.RootSum()
	require.NoError(t, err)
	require.Equal(t, int32(300), sumAfter)
}

func TestPushThenGetProofRoundTrip(t *testing.T) {
	tr, err := New([]Leaf{NewLeaf("alice", 100)})
	require.NoError(t, err)

	index, err := tr.Push(NewLeaf("bob", 200))
	require.NoError(t, err)

	proof, err := tr.GetProof(index)
	require.NoError(t, err)
	ok, err := tr.VerifyProof(*proof)
	require.NoError(t, err)
	require.True(t, ok)
}
