package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Local reads pages from a directory. Lookups are confined to the directory
// through os.Root, so titles cannot escape it even through symlinks.
type Local struct {
	root *os.Root
	dir  string
}

// NewLocal opens dir. The directory must exist.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidConfig)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Local{root: root, dir: dir}, nil
}

// Dir returns the directory the source was opened with.
func (l *Local) Dir() string {
	return l.dir
}

// Close releases the directory handle.
func (l *Local) Close() error {
	return l.root.Close()
}

func (l *Local) Read(ctx context.Context, title string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := FileName(title)
	if err != nil {
		return nil, err
	}

	f, err := l.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, title)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, title)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	return data, nil
}

func (l *Local) Exists(_ context.Context, title string) bool {
	name, err := FileName(title)
	if err != nil {
		return false
	}
	info, err := l.root.Stat(name)
	return err == nil && !info.IsDir()
}
