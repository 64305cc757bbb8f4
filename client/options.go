package client

import (
	"crypto/ecdsa"

	"github.com/forestrie/go-merklestore/storage"
	"github.com/google/uuid"
)

type Options struct {
	// LogID selects the record key, so one store can hold the records of
	// several servers
	LogID uuid.UUID
	// SealPublicKey, when set, requires every store to return a seal that
	// verifies with it
	SealPublicKey *ecdsa.PublicKey
}

// Option is a generic option type. Implementations type assert to their
// Options target record and ignore options that don't apply to them.
type Option func(any)

func WithLogID(logID uuid.UUID) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.LogID = logID
		}
	}
}

func WithSealPublicKey(pub *ecdsa.PublicKey) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.SealPublicKey = pub
		}
	}
}

func defaultOptions() Options {
	return Options{LogID: storage.DefaultLogID}
}
