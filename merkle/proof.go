package merkle

import "fmt"

// InclusionProof returns the sibling hashes needed to recompute the root from
// the leaf at leafIndex.
//
// The proof is ordered bottom-up, entry k being the sibling on row k of the
// node on the path from the leaf. For leaf 2 in a four leaf tree the proof is
// [H(3), H(01)]
//
//	2        0123
//	       /      \
//	1     01      23
//	     /  \    /  \
//	0   0    1  2    3
//
// The proof has Depth() - 1 entries, and is empty for a single leaf tree.
func (t *Tree) InclusionProof(leafIndex uint64) ([]string, error) {
	if leafIndex >= t.LeafCount() {
		return nil, fmt.Errorf(
			"%w: %d, the tree has %d leaves", ErrIndexOutOfRange, leafIndex, t.LeafCount())
	}

	path := InclusionProofPath(leafIndex, t.Depth())
	proof := make([]string, 0, len(path))
	for level, iSibling := range path {
		proof = append(proof, t.rows[level][iSibling])
	}
	return proof, nil
}
