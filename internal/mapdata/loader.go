// Package mapdata loads mansion layouts from JSON map files.
package mapdata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads and unmarshals a JSON file from the given filesystem.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read map file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadFile reads and unmarshals a JSON file from the local disk.
func LoadFile[T any](path string) (T, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return Load[T](os.DirFS(dir), name)
}
