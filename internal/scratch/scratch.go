package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"invopo/internal/domain"
)

// Store materializes uploaded blobs onto scratch storage. Each call
// allocates a fresh uniquely named file; files are never reused or
// deleted, so a replaced upload leaves its predecessor orphaned.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. An empty dir means the OS
// temp directory. The directory is created if it does not exist.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating scratch dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the scratch directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Materialize writes data verbatim to a new uniquely named file that
// preserves the lowercased extension of originalName, and returns the
// resulting handle. The extension is recorded as-is; whether it is a
// supported format is decided later by the extractor.
func (s *Store) Materialize(data []byte, originalName string) (*domain.TempFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, uuid.New().String()+ext)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("writing scratch file: %w", err)
	}

	return &domain.TempFile{
		Path:         path,
		OriginalName: originalName,
		Extension:    ext,
	}, nil
}
