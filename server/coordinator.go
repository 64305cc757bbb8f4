// Package server implements the storage side of merklestore: it commits to a
// batch of files and serves individual files with inclusion proofs.
package server

import (
	"context"
	"fmt"
	"sync"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklestore/api"
	"github.com/forestrie/go-merklestore/merkle"
	"github.com/forestrie/go-merklestore/seal"
	"github.com/forestrie/go-merklestore/storage"
)

// Coordinator validates and persists batches and answers fetches against the
// current batch.
//
// The tree is not cached, each fetch rebuilds it from the persisted hashes.
// That costs O(n) hashes per fetch, which is fine for the small batches this
// is intended for.
//
// The mutex makes the pair of blob writes in AddFiles, and the pair of reads in
// FetchFile, atomic with respect to each other for callers sharing the
// Coordinator. Processes sharing the same store are not coordinated.
type Coordinator struct {
	log       logger.Logger
	store     storage.Store
	cborCodec dtcbor.CBORCodec
	opts      Options

	filesKey  string
	hashesKey string

	mu sync.RWMutex
}

func NewCoordinator(log logger.Logger, store storage.Store, opts ...Option) (*Coordinator, error) {
	c := &Coordinator{
		log:   log,
		store: store,
		opts:  defaultOptions(),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}

	var err error
	if c.cborCodec, err = storage.NewCodec(); err != nil {
		return nil, err
	}
	if c.filesKey, err = storage.ObjectKey(c.opts.LogID, storage.ObjectFiles); err != nil {
		return nil, err
	}
	if c.hashesKey, err = storage.ObjectKey(c.opts.LogID, storage.ObjectHashes); err != nil {
		return nil, err
	}
	return c, nil
}

// AddFiles replaces the current batch with the files and hashes in req and
// returns the merkle root over the hashes.
//
// Unless the coordinator was created WithLeafHashCheck, the hashes are trusted
// as supplied. The client protects itself by verifying every fetch against
// the hashes it computed.
func (c *Coordinator) AddFiles(ctx context.Context, req api.StoreRequest) (api.StoreResponse, error) {

	if len(req.Files) != len(req.Hashes) {
		return api.StoreResponse{}, fmt.Errorf(
			"%w: number of files %d is not equal to number of hashes %d",
			api.ErrInvalidRequest, len(req.Files), len(req.Hashes))
	}
	if c.opts.CheckLeafHashes {
		for i, file := range req.Files {
			if merkle.HashHex([]byte(file)) != req.Hashes[i] {
				return api.StoreResponse{}, fmt.Errorf(
					"%w: hash %d does not match its file", api.ErrInvalidRequest, i)
			}
		}
	}

	// Building first rejects batches the tree is not defined for (empty or not
	// padded) before anything is persisted.
	tree, err := merkle.Build(req.Hashes)
	if err != nil {
		return api.StoreResponse{}, fmt.Errorf("%w: %w", api.ErrInvalidRequest, err)
	}

	resp := api.StoreResponse{Root: tree.Root()}
	if c.opts.RootSigner != nil {
		resp.Seal, err = c.opts.RootSigner.Sign1(seal.SealedRoot{
			Root:      resp.Root,
			LeafCount: tree.LeafCount(),
			LogID:     c.opts.LogID[:],
		})
		if err != nil {
			return api.StoreResponse{}, fmt.Errorf("%w: sealing root: %w", api.ErrStorageIO, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The previous files blob is kept so a failed hashes write can put it
	// back. nil means there was no previous batch.
	previous, err := c.store.Get(ctx, c.filesKey)
	if err != nil && !storage.IsBlobNotFound(err) {
		return api.StoreResponse{}, fmt.Errorf("%w: reading files: %w", api.ErrStorageIO, err)
	}

	err = storage.PutCBOR(ctx, c.store, c.cborCodec, c.filesKey, req.Files)
	if err != nil {
		return api.StoreResponse{}, fmt.Errorf("%w: writing files: %w", api.ErrStorageIO, err)
	}
	err = storage.PutCBOR(ctx, c.store, c.cborCodec, c.hashesKey, req.Hashes)
	if err != nil {
		if rerr := c.restoreFiles(ctx, previous); rerr != nil {
			return api.StoreResponse{}, fmt.Errorf(
				"%w: writing hashes: %w, restoring files: %w", api.ErrStorageIO, err, rerr)
		}
		return api.StoreResponse{}, fmt.Errorf("%w: writing hashes: %w", api.ErrStorageIO, err)
	}

	c.log.Infof("AddFiles: committed %d files, root %s", len(req.Files), resp.Root)
	return resp, nil
}

// FetchFile returns the file at req.FileIndex in the current batch together
// with its inclusion proof.
func (c *Coordinator) FetchFile(ctx context.Context, req api.FetchRequest) (api.FetchResponse, error) {

	c.mu.RLock()
	files, hashes, err := c.readBatch(ctx)
	c.mu.RUnlock()
	if err != nil {
		return api.FetchResponse{}, err
	}

	if req.FileIndex >= uint64(len(files)) {
		return api.FetchResponse{}, fmt.Errorf(
			"%w: cannot fetch file with index %d, only %d files stored",
			api.ErrIndexOutOfRange, req.FileIndex, len(files))
	}

	tree, err := merkle.Build(hashes)
	if err != nil {
		return api.FetchResponse{}, fmt.Errorf("%w: stored hashes: %w", api.ErrStorageIO, err)
	}
	proof, err := tree.InclusionProof(req.FileIndex)
	if err != nil {
		return api.FetchResponse{}, fmt.Errorf("%w: %w", api.ErrIndexOutOfRange, err)
	}

	c.log.Debugf("FetchFile: %d of %d, proof %s", req.FileIndex, len(files), merkle.ProofString(proof, ", "))
	return api.FetchResponse{File: files[req.FileIndex], Proof: proof}, nil
}

// Root returns the root and size of the current batch
func (c *Coordinator) Root(ctx context.Context) (string, uint64, error) {
	tree, err := c.Tree(ctx)
	if err != nil {
		return "", 0, err
	}
	return tree.Root(), tree.LeafCount(), nil
}

// Tree rebuilds the tree over the current batch
func (c *Coordinator) Tree(ctx context.Context) (*merkle.Tree, error) {
	c.mu.RLock()
	_, hashes, err := c.readBatch(ctx)
	c.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	tree, err := merkle.Build(hashes)
	if err != nil {
		return nil, fmt.Errorf("%w: stored hashes: %w", api.ErrStorageIO, err)
	}
	return tree, nil
}

// restoreFiles puts back the files blob of the previous batch. With no
// previous batch an empty files list is written, which reads as nothing
// stored.
func (c *Coordinator) restoreFiles(ctx context.Context, previous []byte) error {
	if previous == nil {
		return storage.PutCBOR(ctx, c.store, c.cborCodec, c.filesKey, []string{})
	}
	return c.store.Put(ctx, c.filesKey, previous)
}

// readBatch reads the persisted files and hashes. When nothing has been stored
// yet every index is out of range, so a missing batch is reported that way.
func (c *Coordinator) readBatch(ctx context.Context) ([]string, []string, error) {
	var files, hashes []string

	err := storage.GetCBOR(ctx, c.store, c.cborCodec, c.filesKey, &files)
	if storage.IsBlobNotFound(err) {
		return nil, nil, fmt.Errorf("%w: no files stored", api.ErrIndexOutOfRange)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading files: %w", api.ErrStorageIO, err)
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w: no files stored", api.ErrIndexOutOfRange)
	}
	err = storage.GetCBOR(ctx, c.store, c.cborCodec, c.hashesKey, &hashes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading hashes: %w", api.ErrStorageIO, err)
	}
	if len(files) != len(hashes) {
		return nil, nil, fmt.Errorf(
			"%w: %d stored files but %d stored hashes", api.ErrStorageIO, len(files), len(hashes))
	}
	return files, hashes, nil
}
