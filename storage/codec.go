package storage

import (
	"context"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// NewCodec returns the deterministic CBOR codec used for every structured
// blob. Deterministic encoding means the same batch always produces the same
// bytes.
func NewCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// PutCBOR encodes v and stores it under key
func PutCBOR(ctx context.Context, store ObjectWriter, codec dtcbor.CBORCodec, key string, v any) error {
	data, err := codec.MarshalCBOR(v)
	if err != nil {
		return err
	}
	return store.Put(ctx, key, data)
}

// GetCBOR reads the blob under key and decodes it into v, which must be a
// pointer
func GetCBOR(ctx context.Context, store ObjectReader, codec dtcbor.CBORCodec, key string, v any) error {
	data, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	return codec.UnmarshalInto(data, v)
}
