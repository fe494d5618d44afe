package mst

import (
	"sort"

	"go.uber.org/zap"
)

// ancestorUpdate pairs a flat node-array index with the node that index
// must hold once a leaf mutation is committed.
type ancestorUpdate struct {
	index int
	node  Node
}

// computeAncestorUpdates recomputes every node on the path from a replaced
// leaf up to the root, without mutating the tree. SetLeaf only commits
// these results after every one of them succeeds, so a mid-path overflow
// leaves the tree exactly as it was (spec.md §4.7's atomicity requirement).
func (t *Tree) computeAncestorUpdates(leafNode Node, index int) ([]ancestorUpdate, error) {
	updates := make([]ancestorUpdate, 0, t.height)
	updates = append(updates, ancestorUpdate{index: index, node: leafNode})

	levelWidth := len(t.leafs)
	levelStart := 0
	pos := index
	current := leafNode

	for levelWidth > 1 {
		var siblingIdx int
		var left, right Node
		var err error

		if pos%2 == 0 {
			siblingIdx = levelStart + pos + 1
		} else {
			siblingIdx = levelStart + pos - 1
		}
		sibling, err := t.Node(siblingIdx)
		if err != nil {
			return nil, err
		}

		if pos%2 == 0 {
			left, right = current, sibling
		} else {
			left, right = sibling, current
		}

		parent, err := buildParent(left, right)
		if err != nil {
			return nil, err
		}

		levelStart += levelWidth
		levelWidth /= 2
		pos /= 2
		current = parent

		updates = append(updates, ancestorUpdate{index: levelStart + pos, node: parent})
	}

	return updates, nil
}

// insertZeroIndex records index as holding a zero-leaf, keeping zeroIndex
// sorted and free of duplicates.
func (t *Tree) insertZeroIndex(index int) {
	i := sort.SearchInts(t.zeroIndex, index)
	if i < len(t.zeroIndex) && t.zeroIndex[i] == index {
		return
	}
	t.zeroIndex = append(t.zeroIndex, 0)
	copy(t.zeroIndex[i+1:], t.zeroIndex[i:])
	t.zeroIndex[i] = index
}

// removeZeroIndex drops index from the zero-leaf position list, if present.
func (t *Tree) removeZeroIndex(index int) {
	i := sort.SearchInts(t.zeroIndex, index)
	if i >= len(t.zeroIndex) || t.zeroIndex[i] != index {
		return
	}
	t.zeroIndex = append(t.zeroIndex[:i], t.zeroIndex[i+1:]...)
}

// SetLeaf replaces the leaf at index and recomputes every ancestor up to
// the root. The tree is left completely unchanged if any ancestor update
// would overflow (spec.md §4.7).
func (t *Tree) SetLeaf(leaf Leaf, index int) error {
	if index < 0 || index >= len(t.leafs) {
		return &IndexOutOfBounds{Index: index, Max: len(t.leafs)}
	}

	updates, err := t.computeAncestorUpdates(leaf.Node, index)
	if err != nil {
		return err
	}

	wasZero := t.leafs[index].IsZero()
	t.leafs[index] = leaf
	for _, u := range updates {
		t.nodes[u.index] = u.node
	}

	if wasZero && !leaf.IsZero() {
		t.removeZeroIndex(index)
	} else if !wasZero && leaf.IsZero() {
		t.insertZeroIndex(index)
	}

	t.log.Debug("mst: leaf set", zap.Int("index", index))
	return nil
}

// Push appends leaf to the tree: into the first available zero-leaf slot
// if one exists, otherwise by rebuilding one level taller. It returns the
// index leaf now occupies.
//
// On a full-tree rebuild, the returned index is the tree's length before
// the push — resolving spec.md §9's open question about what a full-tree
// push should report, since appending beyond the last existing index is
// the only index that makes sense as "where the new leaf went" once the
// tree has grown (SPEC_FULL.md §F-4.2).
func (t *Tree) Push(leaf Leaf) (int, error) {
	if len(t.zeroIndex) > 0 {
		index := t.zeroIndex[0]
		if err := t.SetLeaf(leaf, index); err != nil {
			return 0, err
		}
		return index, nil
	}

	preLen := len(t.leafs)
	grown := make([]Leaf, preLen, preLen*2)
	copy(grown, t.leafs)
	grown = append(grown, leaf)

	rebuilt, err := createTree(grown)
	if err != nil {
		return 0, err
	}
	rebuilt.log = t.log

	*t = *rebuilt
	t.log.Debug("mst: tree rebuilt on push", zap.Int("index", preLen))
	return preLen, nil
}

// Remove clears the leaf at index back to the zero-leaf.
func (t *Tree) Remove(index int) error {
	return t.SetLeaf(NewLeaf(zeroLeafID, 0), index)
}
