package mst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildParentSumsValues(t *testing.T) {
	left := NewLeaf("alice", 100)
	right := NewLeaf("bob", 200)

	parent, err := buildParent(left.Node, right.Node)
	require.NoError(t, err)
	require.Equal(t, int32(300), parent.Value)
}

func TestBuildParentHashDependsOnOrder(t *testing.T) {
	left := NewLeaf("alice", 100)
	right := NewLeaf("bob", 200)

	ab, err := buildParent(left.Node, right.Node)
	require.NoError(t, err)
	ba, err := buildParent(right.Node, left.Node)
	require.NoError(t, err)

	require.False(t, ab.Equal(ba))
}

func TestBuildParentOverflow(t *testing.T) {
	left := NewLeaf("alice", math.MaxInt32)
	right := NewLeaf("bob", 1)

	_, err := buildParent(left.Node, right.Node)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestBuildParentUnderflow(t *testing.T) {
	left := NewLeaf("alice", math.MinInt32)
	right := NewLeaf("bob", -1)

	_, err := buildParent(left.Node, right.Node)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestBuildParentDeterministic(t *testing.T) {
	left := NewLeaf("alice", 100)
	right := NewLeaf("bob", 200)

	a, err := buildParent(left.Node, right.Node)
	require.NoError(t, err)
	b, err := buildParent(left.Node, right.Node)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
}
