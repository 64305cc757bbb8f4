package merkle

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// debug utilities

// String renders each row of the tree, leaves first
func (t *Tree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MerkleTree depth %d:\n", t.Depth())
	for level, row := range t.rows {
		fmt.Fprintf(&b, "%d: [%s]\n", level, strings.Join(row, ", "))
	}
	return b.String()
}

// Render draws the tree from the root down, one branch per node. Each node is
// labeled with its level, its index in the level, and its hash shortened to
// hashWidth hex characters (0 for the full hash).
func (t *Tree) Render(hashWidth int) string {
	top := len(t.rows) - 1
	tp := treeprint.NewWithRoot(nodeLabel(top, 0, t.rows[top][0], hashWidth))
	t.renderChildren(tp, top, 0, hashWidth)
	return tp.String()
}

func (t *Tree) renderChildren(branch treeprint.Tree, level int, i uint64, hashWidth int) {
	if level == 0 {
		return
	}
	for _, child := range []uint64{2 * i, 2*i + 1} {
		label := nodeLabel(level-1, child, t.rows[level-1][child], hashWidth)
		if level-1 == 0 {
			branch.AddNode(label)
			continue
		}
		t.renderChildren(branch.AddBranch(label), level-1, child, hashWidth)
	}
}

func nodeLabel(level int, i uint64, hash string, hashWidth int) string {
	if hashWidth > 0 && hashWidth < len(hash) {
		hash = hash[:hashWidth]
	}
	return fmt.Sprintf("%d.%d %s", level, i, hash)
}

// ProofString renders a proof on a single line using sep between entries
func ProofString(proof []string, sep string) string {
	return fmt.Sprintf("[%s]", strings.Join(proof, sep))
}
