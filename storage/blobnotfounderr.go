package storage

import (
	"errors"
	"fmt"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const (
	azblobBlobNotFound = "BlobNotFound"
)

// AsStorageError finds the azure sdk storage error, if any, in err's chain
func AsStorageError(err error) (azStorageBlob.StorageError, bool) {
	var ierr *azStorageBlob.InternalError
	if !errors.As(err, &ierr) || ierr == nil {
		return azStorageBlob.StorageError{}, false
	}
	serr := &azStorageBlob.StorageError{}
	if !ierr.As(&serr) {
		return azStorageBlob.StorageError{}, false
	}
	return *serr, true
}

func isAzblobNotFound(err error) bool {
	serr, ok := AsStorageError(err)
	return ok && serr.ErrorCode == azblobBlobNotFound
}

// WrapBlobNotFound makes the azure sdk blob not found error satisfy
// errors.Is(err, ErrBlobNotFound). Other errors, and nil, pass through.
func WrapBlobNotFound(err error) error {
	if err == nil || !isAzblobNotFound(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrBlobNotFound, err)
}
