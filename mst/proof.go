package mst

// GetProof builds the inclusion proof for the leaf at index: the leaf
// itself, plus its ordered sibling path from the leaf level up to (but not
// including) the root (spec.md §4.6).
func (t *Tree) GetProof(index int) (*InclusionProof, error) {
	leaf, err := t.Leaf(index)
	if err != nil {
		return nil, err
	}

	levelWidth := len(t.leafs)
	levelStart := 0
	pos := index

	path := make([]Neighbor, 0, t.height-1)
	for levelWidth > 1 {
		var siblingPos Position
		var siblingIdx int
		if pos%2 == 0 {
			siblingPos = Right
			siblingIdx = pos + 1
		} else {
			siblingPos = Left
			siblingIdx = pos - 1
		}

		sibling, err := t.Node(levelStart + siblingIdx)
		if err != nil {
			return nil, err
		}
		path = append(path, Neighbor{Position: siblingPos, Node: sibling})

		levelStart += levelWidth
		levelWidth /= 2
		pos /= 2
	}

	return &InclusionProof{Leaf: leaf, Path: path}, nil
}

// VerifyProof reports whether proof is a valid inclusion proof against the
// tree's current root.
func (t *Tree) VerifyProof(proof InclusionProof) (bool, error) {
	root, err := t.Root()
	if err != nil {
		return false, err
	}
	return VerifyProofAgainst(proof, root)
}

// VerifyProofAgainst reports whether proof recomputes to root, without
// requiring the rest of the tree — the form spec.md §4.6 calls out for
// verifying against a known-good root held by a party that does not store
// the full tree.
func VerifyProofAgainst(proof InclusionProof, root Node) (bool, error) {
	current := proof.Leaf.Node

	for _, neighbor := range proof.Path {
		var parent Node
		var err error
		switch neighbor.Position {
		case Left:
			parent, err = buildParent(neighbor.Node, current)
		case Right:
			parent, err = buildParent(current, neighbor.Node)
		default:
			return false, ErrInvalidProof
		}
		if err != nil {
			return false, err
		}
		current = parent
	}

	return current.Equal(root), nil
}
