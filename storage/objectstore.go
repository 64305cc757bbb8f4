// Package storage provides the key to blob persistence used by the merklestore
// server and client.
//
// Every backend treats a blob as opaque and replaces it whole on Put. Callers
// that need structure encode it themselves, see Codec.
package storage

import (
	"context"
)

type ObjectReader interface {
	// Get returns the blob stored under key. A key that was never written
	// returns an error satisfying IsBlobNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}

type ObjectWriter interface {
	// Put replaces any blob stored under key with data.
	Put(ctx context.Context, key string, data []byte) error
}

// Store is the single capability the coordinators depend on
type Store interface {
	ObjectReader
	ObjectWriter
}
