package storage

import (
	"fmt"

	"github.com/google/uuid"
)

type ObjectType uint8

const (
	ObjectUndefined ObjectType = iota
	ObjectFiles
	ObjectHashes
	ObjectClientRecord
)

const (
	V1StorePrefix = "v1/merklestore"
	KeyPathSep    = "/"

	FilesBlobName        = "files.cbor"
	HashesBlobName       = "hashes.cbor"
	ClientRecordBlobName = "root.cbor"
)

// DefaultLogID is used when a server is not configured with an explicit log
// id. It is stable across restarts, so an unconfigured server finds the batch
// it previously committed.
var DefaultLogID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/forestrie/go-merklestore"))

// LogPrefix returns the prefix under which all blobs for a log are stored
//
// The returned string has the form 'v1/merklestore/{log-uuid}/'
func LogPrefix(logID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/", V1StorePrefix, logID.String())
}

// ObjectKey returns the fixed key for the object type in the log. There is only
// ever one current batch per log, so the keys carry no sequence number and
// each store replaces the previous objects.
func ObjectKey(logID uuid.UUID, otype ObjectType) (string, error) {
	switch otype {
	case ObjectFiles:
		return LogPrefix(logID) + FilesBlobName, nil
	case ObjectHashes:
		return LogPrefix(logID) + HashesBlobName, nil
	case ObjectClientRecord:
		return LogPrefix(logID) + ClientRecordBlobName, nil
	default:
		return "", fmt.Errorf("%w: object type %d", ErrKeyInvalid, otype)
	}
}

// ParseLogID accepts a uuid string, or the empty string for DefaultLogID
func ParseLogID(s string) (uuid.UUID, error) {
	if s == "" {
		return DefaultLogID, nil
	}
	return uuid.Parse(s)
}
