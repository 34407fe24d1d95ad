package publish

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/jst/internal/errors"
)

// Store is the interface for publish backends.
type Store interface {
	// Put stores data under key, replacing anything already there.
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// DiskStore writes objects below a directory on the local filesystem.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed and returns a store rooted
// at it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("J061").WithDetailf("cannot create %s", dir).Wrap(err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the root directory.
func (s *DiskStore) Dir() string { return s.dir }

// Path returns the file path key is stored at.
func (s *DiskStore) Path(key string) string {
	return filepath.Join(s.dir, filepath.FromSlash(strings.TrimPrefix(key, "/")))
}

// Put writes data to the file for key, creating parent directories.
func (s *DiskStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validKey(key) {
		return errors.New("J061").WithDetailf("invalid key %q", key)
	}
	path := s.Path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New("J061").WithDetailf("cannot create directory for %s", key).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("J061").WithDetailf("cannot write %s", key).Wrap(err)
	}
	return nil
}

// validKey rejects empty keys and keys escaping the store root.
func validKey(key string) bool {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
