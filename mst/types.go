package mst

import (
	"encoding/binary"

	"github.com/AntoineCyr/merkle-sum-proof/field"
	"golang.org/x/crypto/blake2s"
)

// Node is a single entry in the tree: a field hash and a signed value. For a
// leaf, Hash commits only to the leaf's identifier (see NewLeaf); for an
// internal node, Hash commits to both children's hashes and values (see
// buildParent), and Value is the sum of the subtree's leaf values.
type Node struct {
	Hash  field.F
	Value int32
}

// Equal reports componentwise equality.
func (n Node) Equal(o Node) bool {
	return n.Hash.Equal(o.Hash) && n.Value == o.Value
}

// Leaf pairs a human-readable identifier with the Node it hashes to.
type Leaf struct {
	ID   string
	Node Node
}

// zeroLeafID is the identifier that, paired with a zero value, marks an
// empty slot in the tree.
const zeroLeafID = "0"

// NewLeaf builds a Leaf from an identifier and a signed value.
//
// The identifier is bound to a field element via a cryptographic digest
// (BLAKE2s-256, truncated to its first 128 bits) rather than the source's
// 64-bit platform-default string hash — see SPEC_FULL.md §F-3.2. This
// trades exact bit-compatibility with the original binary's leaf hashes for
// a hash that is stable across processes and machines, which the source
// explicitly invites as an acceptable deviation.
func NewLeaf(id string, value int32) Leaf {
	digest := blake2s.Sum256([]byte(id))
	hi := binary.BigEndian.Uint64(digest[0:8])
	lo := binary.BigEndian.Uint64(digest[8:16])
	return Leaf{
		ID: id,
		Node: Node{
			Hash:  field.FromUint128(hi, lo),
			Value: value,
		},
	}
}

// IsZero reports whether l is the canonical empty-slot leaf. Note that the
// zero-leaf's Hash is not the field zero: it is the id-hash of the literal
// string "0", which is non-zero.
func (l Leaf) IsZero() bool {
	return l.ID == zeroLeafID && l.Node.Value == 0
}

// Position indicates which side of the current node a proof neighbor sits
// on at a given level of the tree.
type Position int

const (
	Left Position = iota
	Right
)

func (p Position) String() string {
	if p == Left {
		return "left"
	}
	return "right"
}

// Neighbor is one step of an inclusion proof's path: a sibling node and
// which side it sits on.
type Neighbor struct {
	Position Position
	Node     Node
}

// InclusionProof binds a leaf to an ordered sibling path from that leaf up
// to (but not including) the root.
type InclusionProof struct {
	Leaf Leaf
	Path []Neighbor
}
