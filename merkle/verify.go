package merkle

// IncludedRoot calculates the root committing leafHash at leafIndex given its
// inclusion proof.
//
// At each level the low bit of the current index says which side of the pair
// the accumulated value is on: even indices are the left operand of HashPair
// and odd indices the right. This is the same positional rule Build uses.
func IncludedRoot(leafIndex uint64, leafHash string, proof []string) string {

	root := leafHash

	for _, sibling := range proof {
		if leafIndex&1 == 0 {
			root = HashPair(root, sibling)
		} else {
			root = HashPair(sibling, root)
		}
		leafIndex = Parent(leafIndex)
	}
	return root
}

// VerifyInclusion returns true if leafHash, placed at leafIndex and combined
// with proof, reproduces root.
//
// Verification failure is a result, not an error: a tampered leaf, proof entry
// or root, an index the proof can not address, all produce false.
func VerifyInclusion(root string, leafHash string, leafIndex uint64, proof []string) bool {

	// A proof of length d addresses exactly 2^d leaves
	if len(proof) < 64 && leafIndex>>uint(len(proof)) != 0 {
		return false
	}
	return IncludedRoot(leafIndex, leafHash, proof) == root
}
