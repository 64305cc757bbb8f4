package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tamper replaces the hex character at i with a different one
func tamper(s string, i int) string {
	b := []byte(s)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}

// TestVerifyAllLeaves checks that we can obtain and verify proofs for every
// leaf of every tree size up to 64
func TestVerifyAllLeaves(t *testing.T) {
	for n := 1; n <= 64; n <<= 1 {
		leaves := hashedLeaves(n)
		tree, err := Build(leaves)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			proof, err := tree.InclusionProof(uint64(i))
			require.NoError(t, err)
			assert.True(t, VerifyInclusion(tree.Root(), leaves[i], uint64(i), proof), "n=%d i=%d", n, i)
			assert.Equal(t, tree.Root(), IncludedRoot(uint64(i), leaves[i], proof))
		}
	}
}

func TestVerifyKnownAnswer(t *testing.T) {
	assert.True(t, VerifyInclusion(katRoot, kat0, 0, []string{kat1, kat23}))
	assert.True(t, VerifyInclusion(katRoot, kat3, 3, []string{kat2, kat01}))
}

func TestVerifyTamperSensitivity(t *testing.T) {
	leaves := hashedLeaves(8)
	tree, err := Build(leaves)
	require.NoError(t, err)
	root := tree.Root()

	for i := range leaves {
		proof, err := tree.InclusionProof(uint64(i))
		require.NoError(t, err)

		for _, pos := range []int{0, 31, 63} {
			assert.False(t, VerifyInclusion(root, tamper(leaves[i], pos), uint64(i), proof), "leaf %d char %d", i, pos)
			assert.False(t, VerifyInclusion(tamper(root, pos), leaves[i], uint64(i), proof), "root char %d", pos)
		}

		for k := range proof {
			bad := append([]string(nil), proof...)
			bad[k] = tamper(bad[k], 10)
			assert.False(t, VerifyInclusion(root, leaves[i], uint64(i), bad), "leaf %d proof entry %d", i, k)
		}
	}
}

func TestVerifyRejectsWrongPosition(t *testing.T) {
	leaves := hashedLeaves(4)
	tree, err := Build(leaves)
	require.NoError(t, err)
	proof, err := tree.InclusionProof(1)
	require.NoError(t, err)

	// the right leaf and proof, claimed at the wrong index
	assert.False(t, VerifyInclusion(tree.Root(), leaves[1], 0, proof))
	// an index the proof can not address
	assert.False(t, VerifyInclusion(tree.Root(), leaves[1], 5, proof))
	// truncated and extended proofs
	assert.False(t, VerifyInclusion(tree.Root(), leaves[1], 1, proof[:1]))
	assert.False(t, VerifyInclusion(tree.Root(), leaves[1], 1, append(proof, kat0)))
}
