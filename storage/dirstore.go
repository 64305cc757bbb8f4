package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
)

var (
	ErrPathIsNotDir = errors.New("expected the path to be an existing directory")
)

// DirStore keeps each blob as a file beneath a root directory. The key is the
// slash separated path of the file relative to the root.
//
// Writes go to a temporary file in the destination directory which is then
// renamed over the target, so a reader sees either the previous blob or the new
// one, never a partial write.
type DirStore struct {
	log  logger.Logger
	root string
	opts Options
}

// NewDirStore creates the root directory if necessary
func NewDirStore(log logger.Logger, root string, opts ...Option) (*DirStore, error) {
	s := &DirStore{
		log:  log,
		root: root,
		opts: Options{FileMode: 0644, DirMode: 0755},
	}
	for _, opt := range opts {
		opt(&s.opts)
	}

	err := os.MkdirAll(root, s.opts.DirMode)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPathIsNotDir, root)
	}
	return s, nil
}

// Root returns the directory the store was opened on
func (s *DirStore) Root() string {
	return s.root
}

func (s *DirStore) Path(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

func (s *DirStore) Put(ctx context.Context, key string, data []byte) error {
	filename, err := s.Path(key)
	if err != nil {
		return err
	}
	dir := filepath.Dir(filename)
	if err = os.MkdirAll(dir, s.opts.DirMode); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	tmpname := f.Name()
	// harmless after a successful rename
	defer os.Remove(tmpname)

	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return err
	}
	if n != len(data) {
		f.Close()
		return fmt.Errorf("%w: %s", ErrWriteIncomplete, filename)
	}
	if err = f.Chmod(s.opts.FileMode); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpname, filename); err != nil {
		return err
	}
	s.log.Debugf("dirstore: wrote %d bytes to %s", len(data), filename)
	return nil
}

func (s *DirStore) Get(ctx context.Context, key string) ([]byte, error) {
	filename, err := s.Path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, filename)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
