package storage

import (
	"context"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
)

// BlobStore keeps each blob in an azure storage container, the key is used as
// the blob name.
type BlobStore struct {
	log    logger.Logger
	storer *azblob.Storer
	opts   Options
}

func NewBlobStore(log logger.Logger, storer *azblob.Storer, opts ...Option) *BlobStore {
	s := &BlobStore{
		log:    log,
		storer: storer,
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// NewDevBlobStore connects to the blob store emulator configured in the
// environment (see azblob.NewDevConfigFromEnv) and ensures the container
// exists.
func NewDevBlobStore(ctx context.Context, log logger.Logger, container string, opts ...Option) (*BlobStore, error) {
	storer, err := azblob.NewDev(azblob.NewDevConfigFromEnv(), container)
	if err != nil {
		return nil, err
	}
	client := storer.GetServiceClient()
	// Note: we expect a 'already exists' error here and ignore it.
	_, _ = client.CreateContainer(ctx, container, nil)

	return NewBlobStore(log, storer, opts...), nil
}

// Put overwrites the blob unconditionally. There is a single logical batch per
// key, so there is no etag guard.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	_, err := s.storer.Put(ctx, key, azblob.NewBytesReaderCloser(data), s.opts.blobOptions()...)
	if err != nil {
		return err
	}
	s.log.Debugf("blobstore: wrote %d bytes to %s", len(data), key)
	return nil
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	rr, err := s.storer.Reader(ctx, key)
	if err != nil {
		return nil, WrapBlobNotFound(err)
	}
	defer rr.Reader.Close()

	return io.ReadAll(rr.Reader)
}
