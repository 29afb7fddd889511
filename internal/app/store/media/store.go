// internal/app/store/media/store.go
package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store manages the directory of material attachments. Asset names are
// flat file names ("a1b2c3d4.pdf", "a1b2c3d4_photo.jpg") generated by the
// submission wizard; the catalog persists the name, never the full path.
type Store struct {
	dir string
	log *zap.Logger
}

// New creates the media directory if needed and returns a Store over it.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", dir, err)
	}
	return &Store{dir: dir, log: logger}, nil
}

// Dir returns the media directory path.
func (s *Store) Dir() string {
	return s.dir
}

// FullPath resolves an asset name to its on-disk path. The name is reduced
// to its base so a crafted name cannot escape the media directory.
func (s *Store) FullPath(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Exists reports whether the named asset is present on disk.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.FullPath(name))
	return err == nil
}

// Save streams r into a new asset file under the given name, replacing any
// previous file with that name.
func (s *Store) Save(name string, r io.Reader) error {
	path := s.FullPath(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create asset %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write asset %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close asset %s: %w", name, err)
	}
	return nil
}

// Remove deletes the named asset. A missing file is not an error, so
// removal stays idempotent and a half-deleted material can be retried.
func (s *Store) Remove(name string) error {
	err := os.Remove(s.FullPath(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err == nil {
		s.log.Info("asset removed", zap.String("name", name))
	}
	return nil
}
