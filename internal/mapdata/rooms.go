package mapdata

import (
	"errors"
	"fmt"
	"io/fs"
)

// RoomDef describes one room and, recursively, the rooms behind it.
type RoomDef struct {
	Name  string   `json:"name"`            // Display name (e.g., "Hall de Entrada")
	Color string   `json:"color,omitempty"` // Optional hex color hint for the screen front end
	Left  *RoomDef `json:"left,omitempty"`  // Room reached with "e"
	Right *RoomDef `json:"right,omitempty"` // Room reached with "d"
}

// MansionFile represents the structure of a mansion map file.
type MansionFile struct {
	Title string   `json:"title"`
	Root  *RoomDef `json:"root"`
}

// ErrNoRoot is returned when a map file has no root room.
var ErrNoRoot = errors.New("map has no root room")

// LoadMansion loads a mansion map from the given filesystem.
func LoadMansion(fsys fs.FS, filename string) (MansionFile, error) {
	file, err := Load[MansionFile](fsys, filename)
	if err != nil {
		return file, err
	}
	return file, file.validate(filename)
}

// LoadMansionFile loads a mansion map from a path on disk.
func LoadMansionFile(path string) (MansionFile, error) {
	file, err := LoadFile[MansionFile](path)
	if err != nil {
		return file, err
	}
	return file, file.validate(path)
}

func (f MansionFile) validate(filename string) error {
	if f.Root == nil {
		return fmt.Errorf("%s: %w", filename, ErrNoRoot)
	}
	return nil
}
