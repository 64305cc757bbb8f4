package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBlobNotFound     = errors.New("blob not found")
	ErrKeyInvalid       = errors.New("the storage key is not valid")
	ErrStoreSpecInvalid = errors.New("the storage spec is not recognised, expected mem:, dir:<path>, leveldb:<path> or azblob:<container>")
	ErrWriteIncomplete  = errors.New("a file write succeeded, but the number of bytes written was shorter than the supplied data")
)

// IsBlobNotFound returns true if err reports a missing blob for any of the
// backends
func IsBlobNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrBlobNotFound) || isAzblobNotFound(err)
}

func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrKeyInvalid)
	}
	for _, part := range strings.Split(key, KeyPathSep) {
		if part == "" || part == "." || part == ".." {
			return fmt.Errorf("%w: %s", ErrKeyInvalid, key)
		}
	}
	return nil
}
