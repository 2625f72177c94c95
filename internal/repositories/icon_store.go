package repositories

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IconStore persists uploaded icon images and returns the public path a
// record should reference them by.
type IconStore interface {
	Save(filename string, src io.Reader) (string, error)
}

// DiskIconStore writes icons under a public upload directory, served as
// static files by the HTTP layer.
type DiskIconStore struct {
	dir        string
	publicBase string
}

// NewDiskIconStore creates a DiskIconStore writing to dir. Stored files are
// referenced from records as publicBase + "/" + filename.
func NewDiskIconStore(dir, publicBase string) *DiskIconStore {
	return &DiskIconStore{dir: dir, publicBase: publicBase}
}

// Save writes the icon bytes to disk and returns the public relative path.
func (s *DiskIconStore) Save(filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create icon file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write icon file: %w", err)
	}

	return s.publicBase + "/" + filename, nil
}
