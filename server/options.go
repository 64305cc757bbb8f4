package server

import (
	"github.com/forestrie/go-merklestore/seal"
	"github.com/forestrie/go-merklestore/storage"
	"github.com/google/uuid"
)

// RootSealer signs the state committed by each store. *seal.RootSigner is the
// implementation.
type RootSealer interface {
	Sign1(state seal.SealedRoot) ([]byte, error)
}

type Options struct {
	// LogID namespaces the blob keys, see storage.ObjectKey
	LogID uuid.UUID
	// CheckLeafHashes makes AddFiles reject a batch where any declared hash is
	// not the hash of its file
	CheckLeafHashes bool
	// RootSigner, when set, seals every committed root
	RootSigner RootSealer
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

func WithLeafHashCheck() Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.CheckLeafHashes = true
		}
	}
}

func WithRootSigner(rs RootSealer) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.RootSigner = rs
		}
	}
}

func defaultOptions() Options {
	return Options{LogID: storage.DefaultLogID}
}
