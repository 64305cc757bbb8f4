package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
)

const (
	SchemeMem     = "mem"
	SchemeDir     = "dir"
	SchemeLevelDB = "leveldb"
	SchemeAzblob  = "azblob"
)

// Open returns the Store described by spec
//
//	mem:                 an empty in memory store
//	dir:<path>           files beneath <path>
//	leveldb:<path>       a LevelDB database at <path>, in memory if <path> is empty
//	azblob:<container>   the container on the blob store emulator configured in the environment
//
// A spec without a scheme is treated as a directory path. The returned store
// may implement io.Closer, see Close.
func Open(ctx context.Context, log logger.Logger, spec string, opts ...Option) (Store, error) {
	scheme, arg, found := strings.Cut(spec, ":")
	if !found {
		scheme, arg = SchemeDir, spec
	}

	var store Store
	var err error
	switch scheme {
	case SchemeMem:
		store = NewMemStore()
	case SchemeDir:
		if arg == "" {
			return nil, fmt.Errorf("%w: %s", ErrStoreSpecInvalid, spec)
		}
		store, err = NewDirStore(log, arg, opts...)
	case SchemeLevelDB:
		store, err = NewLevelStore(arg)
	case SchemeAzblob:
		if arg == "" {
			return nil, fmt.Errorf("%w: %s", ErrStoreSpecInvalid, spec)
		}
		store, err = NewDevBlobStore(ctx, log, arg, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrStoreSpecInvalid, spec)
	}
	if err != nil {
		return nil, err
	}
	log.Infof("storage: opened %s store %q", scheme, arg)
	return store, nil
}

// Close releases the store if it holds resources
func Close(store Store) error {
	if c, ok := store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
