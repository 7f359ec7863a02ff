// Package mansion models the mansion as a binary tree of named rooms.
package mansion

// Direction selects one of a room's two exits.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Room is a named node of the mansion tree. A room owns its children.
type Room struct {
	Name  string
	Left  *Room
	Right *Room
	Color string // Optional "#RRGGBB" hint for the screen front end
}

// NewRoom creates a room with the given name and no exits.
func NewRoom(name string) *Room {
	return &Room{Name: name}
}

// IsLeaf returns true if the room has no exits.
func (r *Room) IsLeaf() bool {
	return r.Left == nil && r.Right == nil
}

// Child returns the room behind the given exit, or nil.
func (r *Room) Child(d Direction) *Room {
	switch d {
	case Left:
		return r.Left
	case Right:
		return r.Right
	default:
		return nil
	}
}
