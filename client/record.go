package client

import (
	"context"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/forestrie/go-merklestore/api"
	"github.com/forestrie/go-merklestore/storage"
)

// ClientRecord is everything the client keeps about the batch it stored. It
// is enough to verify any file later fetched from the server.
type ClientRecord struct {
	RootHash string `cbor:"1,keyasint"`
	// FileCount is the number of files the caller supplied, before padding.
	// Indices at or beyond it are rejected without asking the server.
	FileCount uint64 `cbor:"2,keyasint"`
	// Seal is the server's signed commitment to RootHash, when it provides one
	Seal []byte `cbor:"3,keyasint,omitempty"`
}

// recordStore persists a single ClientRecord under a fixed key
type recordStore struct {
	store     storage.Store
	cborCodec dtcbor.CBORCodec
	key       string
}

func (r *recordStore) save(ctx context.Context, rec ClientRecord) error {
	if err := storage.PutCBOR(ctx, r.store, r.cborCodec, r.key, rec); err != nil {
		return fmt.Errorf("%w: writing client record: %w", api.ErrStorageIO, err)
	}
	return nil
}

func (r *recordStore) load(ctx context.Context) (ClientRecord, error) {
	var rec ClientRecord
	err := storage.GetCBOR(ctx, r.store, r.cborCodec, r.key, &rec)
	if storage.IsBlobNotFound(err) {
		return ClientRecord{}, ErrNoRecord
	}
	if err != nil {
		return ClientRecord{}, fmt.Errorf("%w: reading client record: %w", api.ErrStorageIO, err)
	}
	return rec, nil
}
