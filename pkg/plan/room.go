package plan

import (
	"fmt"
	"iter"
	"strings"

	"github.com/matzehuels/architectus/pkg/geom"
)

// RoomType classifies a room.
type RoomType int

// Room types. Garden is the zero value: cells not covered by an explicit
// room are garden in renderers, and rooms declared without a type are too.
const (
	Garden RoomType = iota
	LivingRoom
	Bedroom
	Kitchen
	Bathroom
	Corridor
	DiningRoom
	Office
)

var roomTypeNames = [...]string{
	Garden:     "garden",
	LivingRoom: "living_room",
	Bedroom:    "bedroom",
	Kitchen:    "kitchen",
	Bathroom:   "bathroom",
	Corridor:   "corridor",
	DiningRoom: "dining_room",
	Office:     "office",
}

// RoomTypes lists every room type in declaration order.
func RoomTypes() []RoomType {
	out := make([]RoomType, len(roomTypeNames))
	for i := range roomTypeNames {
		out[i] = RoomType(i)
	}
	return out
}

func (t RoomType) String() string {
	if t < 0 || int(t) >= len(roomTypeNames) {
		return fmt.Sprintf("room_type(%d)", int(t))
	}
	return roomTypeNames[t]
}

// ParseRoomType parses a snake_case room type name. Dashes and case are
// ignored so "Living-Room" parses too.
func ParseRoomType(s string) (RoomType, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range roomTypeNames {
		if name == norm {
			return RoomType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown room type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t RoomType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(roomTypeNames) {
		return nil, fmt.Errorf("invalid room type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RoomType) UnmarshalText(b []byte) error {
	v, err := ParseRoomType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Room is a typed rectangular region of a floor.
type Room struct {
	floor  *Floor
	id     int
	kind   RoomType
	bounds geom.RectInt
}

// ID returns the room's index in its floor's registry.
func (r *Room) ID() int { return r.id }

// Type returns the room type.
func (r *Room) Type() RoomType { return r.kind }

// Bounds returns the rectangle the room occupies.
func (r *Room) Bounds() geom.RectInt { return r.bounds }

// Area returns the number of cells in the room.
func (r *Room) Area() int { return r.bounds.Area() }

// Floor returns the floor that owns the room.
func (r *Room) Floor() *Floor { return r.floor }

// Cells iterates over the room's cells in row-major order.
func (r *Room) Cells() iter.Seq[geom.Vector2Int] {
	return func(yield func(geom.Vector2Int) bool) {
		for y := r.bounds.Y; y < r.bounds.Bottom(); y++ {
			for x := r.bounds.X; x < r.bounds.Right(); x++ {
				if !yield(geom.Vec(x, y)) {
					return
				}
			}
		}
	}
}

func (r *Room) String() string {
	return fmt.Sprintf("%s%v", r.kind, r.bounds)
}
