package storage

import (
	"io/fs"

	"github.com/datatrails/go-datatrails-common/azblob"
)

type Options struct {
	FileMode fs.FileMode
	DirMode  fs.FileMode

	// BlobTags are applied to every blob written by a BlobStore
	BlobTags map[string]string
}

// Option is a generic option type used for storage implementations.
// Implementations type assert to Options target record and if that fails the
// expectation they ignore the options
type Option func(any)

func WithFileMode(mode fs.FileMode) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.FileMode = mode
		}
	}
}

func WithDirMode(mode fs.FileMode) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.DirMode = mode
		}
	}
}

func WithBlobTags(tags map[string]string) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.BlobTags = tags
		}
	}
}

func (o Options) blobOptions() []azblob.Option {
	if len(o.BlobTags) == 0 {
		return nil
	}
	return []azblob.Option{azblob.WithTags(o.BlobTags)}
}
