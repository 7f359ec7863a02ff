package mansion

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mansion/internal/mapdata"
)

// Room names of the built-in mansion.
const (
	HallName       = "Hall de Entrada"
	LivingRoomName = "Sala de Estar"
	KitchenName    = "Cozinha"
	LibraryName    = "Biblioteca"
	DiningRoomName = "Sala de Jantar"
	GardenName     = "Jardim"
	PantryName     = "Despensa"
	HallwayName    = "Corredor"
	BedroomName    = "Quarto"
)

// ErrEmptyName is returned when a map definition contains an unnamed room.
var ErrEmptyName = errors.New("room has no name")

// NewDefault builds the fixed mansion layout and returns its root, the entrance hall.
//
//	Hall de Entrada
//	├── e: Sala de Estar
//	│   ├── e: Biblioteca
//	│   │   └── e: Jardim
//	│   └── d: Sala de Jantar
//	└── d: Cozinha
//	    ├── e: Despensa
//	    └── d: Corredor
//	        └── d: Quarto
func NewDefault() *Room {
	hall := NewRoom(HallName)

	hall.Left = NewRoom(LivingRoomName)
	hall.Right = NewRoom(KitchenName)

	hall.Left.Left = NewRoom(LibraryName)
	hall.Left.Right = NewRoom(DiningRoomName)

	hall.Left.Left.Left = NewRoom(GardenName)

	hall.Right.Left = NewRoom(PantryName)
	hall.Right.Right = NewRoom(HallwayName)

	hall.Right.Right.Right = NewRoom(BedroomName)

	return hall
}

// FromDef builds a room tree from a map file definition.
func FromDef(def *mapdata.RoomDef) (*Room, error) {
	if def == nil {
		return nil, nil
	}
	if def.Name == "" {
		return nil, ErrEmptyName
	}

	room := NewRoom(def.Name)
	room.Color = def.Color

	left, err := FromDef(def.Left)
	if err != nil {
		return nil, fmt.Errorf("%s: left: %w", def.Name, err)
	}
	right, err := FromDef(def.Right)
	if err != nil {
		return nil, fmt.Errorf("%s: right: %w", def.Name, err)
	}
	room.Left = left
	room.Right = right

	return room, nil
}
