package mst

import (
	"github.com/AntoineCyr/merkle-sum-proof/field"
	"go.uber.org/zap"
)

// maxHeight is the tallest tree New will build. A height beyond this would
// imply 2^64 or more leaves (more than 2^63), which spec.md §1 puts out of
// scope.
const maxHeight = 64

// Tree is a padded, perfect-binary Merkle Sum Tree. leafs is always a
// power-of-two-length slice; nodes is the flat, level-major concatenation
// of every level from the leaves up to the root (spec.md §3).
type Tree struct {
	leafs     []Leaf
	nodes     []Node
	height    int
	zeroIndex []int
	log       *zap.Logger
}

type options struct {
	log *zap.Logger
}

// Option configures a Tree at construction time.
type Option func(*options)

// WithLogger attaches a structured logger the tree uses for Debug-level
// tracing of construction and mutation (SPEC_FULL.md §F-4.3). A nil logger
// is ignored; trees are silent by default.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// New builds a tree from a non-empty slice of leaves, padding to the next
// power of two with zero-leaves.
func New(leafs []Leaf, opts ...Option) (*Tree, error) {
	t, err := createTree(leafs)
	if err != nil {
		return nil, err
	}

	cfg := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	t.log = cfg.log

	t.log.Debug("mst: tree built",
		zap.Int("leaf_count", len(t.leafs)),
		zap.Int("height", t.height),
	)
	return t, nil
}

// createTree performs the construction steps of spec.md §4.5, independent
// of logging configuration, so Push can rebuild into a fresh Tree and graft
// the caller's logger onto it afterward.
func createTree(leafs []Leaf) (*Tree, error) {
	padded, height, zeroIndex, err := fillLeafs(leafs)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, 2*len(padded)-1)
	level := make([]Node, len(padded))
	for i, l := range padded {
		level[i] = l.Node
	}
	nodes = append(nodes, level...)

	for len(level) > 1 {
		next := make([]Node, 0, len(level)/2)
		for j := 0; j < len(level); j += 2 {
			parent, err := buildParent(level[j], level[j+1])
			if err != nil {
				return nil, err
			}
			next = append(next, parent)
		}
		nodes = append(nodes, next...)
		level = next
	}

	return &Tree{
		leafs:     padded,
		nodes:     nodes,
		height:    height,
		zeroIndex: zeroIndex,
		log:       zap.NewNop(),
	}, nil
}

// fillLeafs pads leafs to the next power of two with copies of the
// zero-leaf, and returns the resulting height and the sorted positions of
// every zero-leaf in the padded slice — including zero-leaves the caller
// supplied directly, not only the padding this function appends
// (SPEC_FULL.md §F-4.2).
func fillLeafs(leafs []Leaf) ([]Leaf, int, []int, error) {
	if len(leafs) == 0 {
		return nil, 0, nil, &InvalidTree{Msg: "tree must have at least one leaf"}
	}

	power := 1
	height := 1
	for power < len(leafs) {
		power <<= 1
		height++
		if height > maxHeight {
			return nil, 0, nil, &InvalidTree{Msg: "tree too large"}
		}
	}

	padded := make([]Leaf, len(leafs), power)
	copy(padded, leafs)

	zeroLeaf := NewLeaf(zeroLeafID, 0)
	for len(padded) < power {
		padded = append(padded, zeroLeaf)
	}

	var zeroIndex []int
	for i, l := range padded {
		if l.IsZero() {
			zeroIndex = append(zeroIndex, i)
		}
	}

	return padded, height, zeroIndex, nil
}

// Height returns the number of levels in the tree, leaves included.
func (t *Tree) Height() int { return t.height }

// Leafs returns a copy of the tree's (padded) leaf slice.
func (t *Tree) Leafs() []Leaf {
	out := make([]Leaf, len(t.leafs))
	copy(out, t.leafs)
	return out
}

// Nodes returns a copy of the flat, level-major node array.
func (t *Tree) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// ZeroIndex returns a copy of the sorted positions currently holding a
// zero-leaf.
func (t *Tree) ZeroIndex() []int {
	out := make([]int, len(t.zeroIndex))
	copy(out, t.zeroIndex)
	return out
}

// Leaf returns the leaf at index, or IndexOutOfBounds.
func (t *Tree) Leaf(index int) (Leaf, error) {
	if index < 0 || index >= len(t.leafs) {
		return Leaf{}, &IndexOutOfBounds{Index: index, Max: len(t.leafs)}
	}
	return t.leafs[index], nil
}

// Node returns the flat node at index, or IndexOutOfBounds.
func (t *Tree) Node(index int) (Node, error) {
	if index < 0 || index >= len(t.nodes) {
		return Node{}, &IndexOutOfBounds{Index: index, Max: len(t.nodes)}
	}
	return t.nodes[index], nil
}

// Root returns the tree's root node (its hash commits to every leaf; its
// value is the sum of every leaf's value).
func (t *Tree) Root() (Node, error) {
	if len(t.nodes) == 0 {
		return Node{}, ErrEmptyTree
	}
	return t.nodes[len(t.nodes)-1], nil
}

// RootHash returns the root's hash.
func (t *Tree) RootHash() (field.F, error) {
	root, err := t.Root()
	if err != nil {
		return field.F{}, err
	}
	return root.Hash, nil
}

// RootSum returns the root's value, the sum of every leaf's value.
func (t *Tree) RootSum() (int32, error) {
	root, err := t.Root()
	if err != nil {
		return 0, err
	}
	return root.Value, nil
}
