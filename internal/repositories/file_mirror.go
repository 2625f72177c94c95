package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/models"
)

// FileMirror keeps a secondary, best-effort copy of each portfolio as one
// JSON file per record under a data directory. It is advisory only: callers
// must treat any error as "the record is not available here" and carry on,
// since the in-memory store remains the authoritative path.
type FileMirror struct {
	dir string
}

// NewFileMirror creates a FileMirror rooted at dir. The directory is created
// lazily on the first write.
func NewFileMirror(dir string) *FileMirror {
	return &FileMirror{dir: dir}
}

// Write serializes the portfolio to <dir>/<id>.json.
func (m *FileMirror) Write(portfolio *models.Portfolio) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create mirror directory: %w", err)
	}

	data, err := json.MarshalIndent(portfolio, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio %s: %w", portfolio.ID, err)
	}

	path := filepath.Join(m.dir, portfolio.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mirror file for %s: %w", portfolio.ID, err)
	}
	return nil
}

// Read deserializes the portfolio mirrored for id. A missing or unreadable
// file surfaces as ErrNotFound so callers fall through to their not-found
// handling rather than treating it as a server failure.
func (m *FileMirror) Read(id string) (*models.Portfolio, error) {
	path := filepath.Join(m.dir, id+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mirror file for %s unavailable: %w", id, ErrNotFound)
	}

	var portfolio models.Portfolio
	if err := json.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("mirror file for %s unreadable: %w", id, ErrNotFound)
	}
	return &portfolio, nil
}
