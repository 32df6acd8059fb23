package schedule

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saver writes a fetched schedule document somewhere the user can open it.
type Saver interface {
	Save(name string, blob []byte) (string, error)
}

// DirSaver writes documents into a single directory.
type DirSaver struct {
	Dir string
}

// Save writes blob under name inside the saver's directory, creating the
// directory if needed, and returns the full path written.
func (d DirSaver) Save(name string, blob []byte) (string, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("schedule: ensure output directory: %w", err)
	}

	// Strip any path components so a filename picked in the form cannot
	// escape the output directory.
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return "", fmt.Errorf("schedule: write document: %w", err)
	}
	return path, nil
}
