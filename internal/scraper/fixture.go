package scraper

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrFixtureMissing is returned when a competitor's snapshot file
// cannot be found in the store.
var ErrFixtureMissing = errors.New("fixture not found")

// FixtureStore loads saved competitor page snapshots by file name.
type FixtureStore interface {
	Load(ctx context.Context, name string) (string, error)
}

// FixtureSaver accepts new snapshots. Both the local and the R2
// store implement it.
type FixtureSaver interface {
	Save(ctx context.Context, name string, body io.Reader) error
}

// LocalFixtureStore reads snapshots from a directory on disk.
type LocalFixtureStore struct {
	dir string
}

func NewLocalFixtureStore(dir string) *LocalFixtureStore {
	return &LocalFixtureStore{dir: dir}
}

// Load reads a snapshot by base name. Any path components in the
// requested name are stripped so lookups stay inside the directory.
func (s *LocalFixtureStore) Load(ctx context.Context, name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrFixtureMissing
		}
		return "", err
	}
	return string(data), nil
}

// Save writes a snapshot into the directory, base name only.
func (s *LocalFixtureStore) Save(ctx context.Context, name string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, filepath.Base(name)), data, 0o644)
}
