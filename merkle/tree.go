package merkle

import "fmt"

// Tree is a complete binary merkle tree held as a sequence of rows.
//
// Row 0 holds the leaf hashes in the order they were supplied. Each following
// row has half as many entries as the one below it, entry i being
// HashPair(below[2i], below[2i+1]). The last row has a single entry, the root.
type Tree struct {
	rows [][]string
}

// Build constructs the tree over leaves. The number of leaves must be a non
// zero power of two, callers pad their batch before hashing it. A single leaf
// is its own root.
//
// The leaves are copied, the caller may re-use the slice.
func Build(leaves []string) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	if !IsPow2(uint64(len(leaves))) {
		return nil, fmt.Errorf("%w: got %d", ErrNotPow2, len(leaves))
	}

	rows := make([][]string, 0, Depth(uint64(len(leaves))))

	row := make([]string, len(leaves))
	copy(row, leaves)
	rows = append(rows, row)

	for len(row) > 1 {
		next := make([]string, len(row)/2)
		for i := range next {
			next[i] = HashPair(row[2*i], row[2*i+1])
		}
		rows = append(rows, next)
		row = next
	}

	return &Tree{rows: rows}, nil
}

// Root is a convenience for Build(leaves).Root()
func Root(leaves []string) (string, error) {
	t, err := Build(leaves)
	if err != nil {
		return "", err
	}
	return t.Root(), nil
}

// Root returns the single hash committing every leaf in the tree
func (t *Tree) Root() string {
	return t.rows[len(t.rows)-1][0]
}

// Depth returns the number of rows, 1 + log2(LeafCount)
func (t *Tree) Depth() int {
	return len(t.rows)
}

func (t *Tree) LeafCount() uint64 {
	return uint64(len(t.rows[0]))
}

// Row returns the hashes on the requested level, 0 being the leaves. The
// returned slice is owned by the tree and must not be modified.
func (t *Tree) Row(level int) []string {
	if level < 0 || level >= len(t.rows) {
		return nil
	}
	return t.rows[level]
}

// Node returns the hash at index i on the requested level
func (t *Tree) Node(level int, i uint64) (string, error) {
	row := t.Row(level)
	if i >= uint64(len(row)) {
		return "", fmt.Errorf("%w: level %d has %d nodes, requested %d", ErrIndexOutOfRange, level, len(row), i)
	}
	return row[i], nil
}
