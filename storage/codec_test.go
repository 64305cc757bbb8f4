package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Root  string   `cbor:"1,keyasint"`
	Count uint64   `cbor:"2,keyasint"`
	Items []string `cbor:"3,keyasint"`
}

func TestCBORBlobs(t *testing.T) {
	ctx := context.Background()
	codec, err := NewCodec()
	require.NoError(t, err)
	store := NewMemStore()

	in := testRecord{Root: "abc", Count: 3, Items: []string{"a", "b", "c"}}
	require.NoError(t, PutCBOR(ctx, store, codec, "rec", in))

	var out testRecord
	require.NoError(t, GetCBOR(ctx, store, codec, "rec", &out))
	assert.Equal(t, in, out)

	// deterministic encoding, the same value always produces the same blob
	first, err := store.Get(ctx, "rec")
	require.NoError(t, err)
	require.NoError(t, PutCBOR(ctx, store, codec, "rec", in))
	second, err := store.Get(ctx, "rec")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	err = GetCBOR(ctx, store, codec, "missing", &out)
	assert.True(t, IsBlobNotFound(err))

	require.NoError(t, store.Put(ctx, "garbage", []byte{0xff, 0x00}))
	assert.Error(t, GetCBOR(ctx, store, codec, "garbage", &out))
}
