// Package client stores a batch of files with a merklestore server and later
// fetches individual files, verifying each against the root it kept.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklestore/api"
	"github.com/forestrie/go-merklestore/merkle"
	"github.com/forestrie/go-merklestore/seal"
	"github.com/forestrie/go-merklestore/storage"
)

type Coordinator struct {
	log       logger.Logger
	transport Transport
	records   recordStore
	opts      Options
}

// NewCoordinator returns a client that talks to the server through transport
// and keeps its record in store.
func NewCoordinator(log logger.Logger, transport Transport, store storage.Store, opts ...Option) (*Coordinator, error) {
	c := &Coordinator{
		log:       log,
		transport: transport,
		opts:      defaultOptions(),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}

	codec, err := storage.NewCodec()
	if err != nil {
		return nil, err
	}
	key, err := storage.ObjectKey(c.opts.LogID, storage.ObjectClientRecord)
	if err != nil {
		return nil, err
	}
	c.records = recordStore{store: store, cborCodec: codec, key: key}
	return c, nil
}

// Store pads files, submits them with their hashes, and records the returned
// root. Any previous record is replaced.
//
// The root is not recomputed locally: a server that lies about it will fail
// every later Fetch.
func (c *Coordinator) Store(ctx context.Context, files []string) (ClientRecord, error) {
	if len(files) == 0 {
		return ClientRecord{}, fmt.Errorf("%w: no files to store", api.ErrInvalidRequest)
	}

	padded := PadFiles(files)
	resp, err := c.transport.Store(ctx, api.StoreRequest{
		Files:  padded,
		Hashes: LeafHashes(padded),
	})
	if err != nil {
		return ClientRecord{}, err
	}

	rec := ClientRecord{
		RootHash:  resp.Root,
		FileCount: uint64(len(files)),
		Seal:      resp.Seal,
	}

	if c.opts.SealPublicKey != nil {
		if err = c.verifySeal(rec, uint64(len(padded))); err != nil {
			return ClientRecord{}, err
		}
	}

	if err = c.records.save(ctx, rec); err != nil {
		return ClientRecord{}, err
	}
	c.log.Infof("Store: %d files (%d padded), root %s", len(files), len(padded), rec.RootHash)
	return rec, nil
}

func (c *Coordinator) verifySeal(rec ClientRecord, leafCount uint64) error {
	if len(rec.Seal) == 0 {
		return fmt.Errorf("%w: server returned no seal", api.ErrIntegrityViolation)
	}
	state, err := seal.VerifySealedRoot(c.records.cborCodec, c.opts.SealPublicKey, rec.Seal, rec.RootHash)
	if err != nil {
		return fmt.Errorf("%w: %w", api.ErrIntegrityViolation, err)
	}
	if !bytes.Equal(state.LogID, c.opts.LogID[:]) {
		return fmt.Errorf("%w: seal is for log %x, expected %s",
			api.ErrIntegrityViolation, state.LogID, c.opts.LogID)
	}
	if state.LeafCount != leafCount {
		return fmt.Errorf("%w: seal commits %d leaves, stored %d",
			api.ErrIntegrityViolation, state.LeafCount, leafCount)
	}
	return nil
}

// Fetch returns the file stored at index once its inclusion proof has been
// verified against the recorded root. Indices outside the stored batch fail
// without contacting the server.
func (c *Coordinator) Fetch(ctx context.Context, index uint64) (string, error) {
	rec, err := c.records.load(ctx)
	if errors.Is(err, ErrNoRecord) {
		return "", fmt.Errorf("%w: %w", api.ErrIndexOutOfRange, err)
	}
	if err != nil {
		return "", err
	}
	if index >= rec.FileCount {
		return "", fmt.Errorf(
			"%w: cannot fetch file with index %d, only %d files stored",
			api.ErrIndexOutOfRange, index, rec.FileCount)
	}

	resp, err := c.transport.Fetch(ctx, api.FetchRequest{FileIndex: index})
	if err != nil {
		return "", err
	}

	// The record fixes the tree depth, so a proof of any other length is for
	// a different batch.
	if want := merkle.Depth(rec.FileCount) - 1; len(resp.Proof) != want {
		return "", fmt.Errorf("%w: proof for file %d has %d entries, expected %d",
			api.ErrIntegrityViolation, index, len(resp.Proof), want)
	}
	leafHash := merkle.HashHex([]byte(resp.File))
	if !merkle.VerifyInclusion(rec.RootHash, leafHash, index, resp.Proof) {
		c.log.Debugf("Fetch: file %d proves root %s, want %s",
			index, merkle.IncludedRoot(index, leafHash, resp.Proof), rec.RootHash)
		return "", fmt.Errorf("%w: file %d does not verify against root %s",
			api.ErrIntegrityViolation, index, rec.RootHash)
	}
	return resp.File, nil
}

// Record returns the record of the last stored batch
func (c *Coordinator) Record(ctx context.Context) (ClientRecord, error) {
	return c.records.load(ctx)
}
