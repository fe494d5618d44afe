package mst

import (
	"math"

	"github.com/AntoineCyr/merkle-sum-proof/field"
	"github.com/AntoineCyr/merkle-sum-proof/mimcsponge"
)

// buildParent combines two children into their parent: the value is their
// checked sum, and the hash commits to both children's hashes and values,
// so tampering with a sum anywhere in the tree invalidates the root hash
// (spec.md §4.4).
func buildParent(left, right Node) (Node, error) {
	sum := int64(left.Value) + int64(right.Value)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return Node{}, ErrOverflow
	}

	arr := []field.F{
		left.Hash,
		field.FromInt32(left.Value),
		right.Hash,
		field.FromInt32(right.Value),
	}

	out := mimcsponge.MultiHash(arr, field.Zero(), 1)
	return Node{Hash: out[0], Value: int32(sum)}, nil
}
