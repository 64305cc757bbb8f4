package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepth(t *testing.T) {
	tests := []struct {
		leafCount uint64
		want      int
	}{
		{1, 1}, // 2^0
		{2, 2}, // 2^1
		{3, 3},
		{4, 3}, // 2^2
		{5, 4},
		{8, 4}, // 2^3
		{9, 5},
		{16, 5}, // 2^4
		{17, 6},
		{32, 6}, // 2^5
		{33, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Depth(tt.leafCount), "leafCount %d", tt.leafCount)
	}
}
