package merkle

// Depth returns the number of rows in the complete binary tree that commits
// leafCount leaves once they have been padded to a power of two.
//
//	leafCount:  1  2  3  4  5  8  9  16
//	depth:      1  2  3  3  4  4  5   5
//
// The proof for any leaf in such a tree has Depth - 1 entries.
func Depth(leafCount uint64) int {
	return int(Log2Uint64(NextPow2(leafCount))) + 1
}
