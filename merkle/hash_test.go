package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashHex(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"digit zero", "0", "5feceb66ffc86f38d952786c6d696c79c2dbc239dd4e91b46729d73a27fb57e9"},
		{"digit one", "1", "6b86b273ff34fce19d6b804eff5a3f5747ada4eaa22f1d49c01e52ddb7875b4b"},
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashHex([]byte(tt.data)))
		})
	}
}

func TestHashPairIsPositional(t *testing.T) {
	a := HashHex([]byte("a"))
	b := HashHex([]byte("b"))

	assert.Equal(t, HashHex([]byte(a+b)), HashPair(a, b))
	assert.NotEqual(t, HashPair(a, b), HashPair(b, a))
}
