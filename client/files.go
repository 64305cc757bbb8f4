package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSetPrefix is the name prefix of the numbered files in a file set
// directory: file0, file1, ...
const FileSetPrefix = "file"

// ReadFileSet reads the numbered files file0 .. file{n-1} from dir, where n is
// the number of regular files in dir. Every number in the range must be
// present, so any other regular file in dir makes the set incomplete.
func ReadFileSet(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	n := 0
	for _, e := range entries {
		if e.Type().IsRegular() {
			n++
		}
	}

	files := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s%d", FileSetPrefix, i)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s in %s", ErrFileSetIncomplete, name, dir)
		}
		if err != nil {
			return nil, err
		}
		files = append(files, string(data))
	}
	return files, nil
}
