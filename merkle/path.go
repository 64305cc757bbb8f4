package merkle

// Parent returns the index, on the next level up, of the node committing i.
func Parent(i uint64) uint64 {
	return i >> 1
}

// Sibling returns the index of the node that is paired with i on its level.
// Even indices are left children and pair with i+1, odd indices are right
// children and pair with i-1.
func Sibling(i uint64) uint64 {
	if i&1 == 0 {
		return i + 1
	}
	return i - 1
}

// PathToRoot returns the index of the node visited on each level, starting
// with leafIndex on row 0 and stopping before the root row.
//
// For a tree of depth 4 and leafIndex 5 the path is [5, 2, 1]
//
//	3              0
//	           /       \
//	2        0           1
//	       /   \       /   \
//	1     0     1     2     3
//	     / \   / \   / \   / \
//	0   0   1 2   3 4   5 6   7
//
// The caller is responsible for leafIndex being in range for depth.
func PathToRoot(leafIndex uint64, depth int) []uint64 {
	if depth <= 1 {
		return nil
	}
	path := make([]uint64, 0, depth-1)
	for level := 0; level < depth-1; level++ {
		path = append(path, leafIndex)
		leafIndex = Parent(leafIndex)
	}
	return path
}

// InclusionProofPath returns the sibling index on each level of the path from
// leafIndex to the root. These are the positions of the witness values an
// inclusion proof carries, which allows tooling to audit a proof node by node.
func InclusionProofPath(leafIndex uint64, depth int) []uint64 {
	path := PathToRoot(leafIndex, depth)
	for i := range path {
		path[i] = Sibling(path[i])
	}
	return path
}
