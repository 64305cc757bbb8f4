package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlobNotFound(t *testing.T) {
	other := errors.New("other")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrBlobNotFound, true},
		{"wrapped sentinel", fmt.Errorf("%w: v1/x", ErrBlobNotFound), true},
		{"unrelated", other, false},
		{"fs not exist is translated by the backend, not here", fs.ErrNotExist, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlobNotFound(tt.err))
		})
	}
}

func TestWrapBlobNotFoundPassThrough(t *testing.T) {
	assert.NoError(t, WrapBlobNotFound(nil))

	other := errors.New("other")
	assert.Same(t, other, WrapBlobNotFound(other))
}

func TestCheckKey(t *testing.T) {
	for _, key := range []string{"", "/a", "a/", "a//b", "a/./b", "../a"} {
		assert.ErrorIs(t, checkKey(key), ErrKeyInvalid, "key %q", key)
	}
	assert.NoError(t, checkKey("v1/merklestore/x/files.cbor"))
}
