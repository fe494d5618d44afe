// Package mst implements a Merkle Sum Tree: a padded, perfect binary tree
// in which every node carries both a cryptographic digest and a signed
// value, and every internal digest commits to both children's digests and
// values.
//
// Construction
//
// A tree is built from a non-empty slice of leaves. The slice is padded
// with zero-leaves (identifier "0", value 0) up to the next power of two,
// then paired bottom-up: each pair of nodes produces a parent whose value
// is the checked sum of the pair and whose hash is the MiMC-Sponge hash of
// both children's hashes and values. The resulting nodes are stored
// level-major in a single flat slice, leaves first and the root last.
//
//	level 0 (leaves):  [n0 n1 n2 n3]
//	level 1:                    [n4   n5]
//	level 2 (root):                  [n6]
//	flat layout:       [n0 n1 n2 n3 n4 n5 n6]
//
// Because every hash binds in the subtree's summed value, altering any
// leaf's value without updating its ancestors changes the root, which is
// what lets a proof verifier trust a claimed subtotal.
//
// Mutation
//
// SetLeaf, Push, and Remove all recompute every affected ancestor before
// committing any change to the tree, so a failing mutation (an overflowing
// sum partway up the path) leaves the tree exactly as it was. Push reuses
// the lowest-index zero-leaf slot when one is available, and otherwise
// rebuilds one level taller.
//
// Proofs
//
// An inclusion proof pairs a leaf with its sibling path from the leaf
// level up to (but not including) the root. Verification folds the path
// back up with the same parent-building rule used at construction time and
// compares the result against a root — either the tree's own, or one
// supplied independently, so a verifier never needs the rest of the tree.
package mst
