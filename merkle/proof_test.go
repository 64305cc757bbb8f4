package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusionProofKnownAnswer(t *testing.T) {
	tree, err := Build(hashedLeaves(4))
	require.NoError(t, err)

	proof, err := tree.InclusionProof(0)
	require.NoError(t, err)
	assert.Equal(t, []string{tree.Row(0)[1], tree.Row(1)[1]}, proof)
	assert.Equal(t, []string{kat1, kat23}, proof)

	proof, err = tree.InclusionProof(2)
	require.NoError(t, err)
	assert.Equal(t, []string{kat3, kat01}, proof)
}

func TestInclusionProofLength(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32, 128} {
		tree, err := Build(hashedLeaves(n))
		require.NoError(t, err)

		want := int(Log2Uint64(uint64(n)))
		for i := 0; i < n; i++ {
			proof, err := tree.InclusionProof(uint64(i))
			require.NoError(t, err)
			require.Len(t, proof, want, "n=%d i=%d", n, i)
		}
	}
}

func TestInclusionProofOutOfRange(t *testing.T) {
	tree, err := Build(hashedLeaves(4))
	require.NoError(t, err)

	_, err = tree.InclusionProof(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	single, err := Build(hashedLeaves(1))
	require.NoError(t, err)
	proof, err := single.InclusionProof(0)
	require.NoError(t, err)
	assert.Empty(t, proof)
	_, err = single.InclusionProof(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
