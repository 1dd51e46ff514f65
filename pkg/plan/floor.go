package plan

import (
	"fmt"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
)

// Floor is one level of a lot. It maps each cell to at most one room.
type Floor struct {
	lot    *HouseLot
	number int
	size   geom.Vector2Int
	cells  []*Room // row-major, len = size.X*size.Y
	rooms  []*Room
}

func newFloor(lot *HouseLot, number int) *Floor {
	return &Floor{
		lot:    lot,
		number: number,
		size:   lot.size,
		cells:  make([]*Room, lot.size.X*lot.size.Y),
	}
}

// Lot returns the lot that owns the floor.
func (f *Floor) Lot() *HouseLot { return f.lot }

// Number returns the zero-based floor index.
func (f *Floor) Number() int { return f.number }

// Size returns the floor extent in cells.
func (f *Floor) Size() geom.Vector2Int { return f.size }

// Bounds returns the floor extent as a rectangle at the origin.
func (f *Floor) Bounds() geom.RectInt { return geom.RectFrom(geom.Zero, f.size) }

// Rooms returns the floor's rooms in the order they were added.
// The returned slice must not be modified.
func (f *Floor) Rooms() []*Room { return f.rooms }

// RoomCount returns the number of rooms on the floor.
func (f *Floor) RoomCount() int { return len(f.rooms) }

// GetRoom returns the room covering cell p, or nil when p is outside the
// floor or not covered by any room.
func (f *Floor) GetRoom(p geom.Vector2Int) *Room {
	if !f.Bounds().Contains(p) {
		return nil
	}
	return f.cells[f.index(p)]
}

// RectIsEmpty reports whether no cell of r is occupied. Cells outside the
// floor count as not empty.
func (f *Floor) RectIsEmpty(r geom.RectInt) bool {
	if !f.Bounds().ContainsRect(r) {
		return false
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if f.cells[f.index(geom.Vec(x, y))] != nil {
				return false
			}
		}
	}
	return true
}

// AddRoom creates a room covering bounds. It panics if bounds is empty,
// extends past the floor, or touches an occupied cell.
func (f *Floor) AddRoom(bounds geom.RectInt, kind RoomType) *Room {
	if bounds.IsEmpty() {
		panic(errors.New(errors.ErrCodeInternal, "floor %d: empty room bounds %v", f.number, bounds))
	}
	if !f.Bounds().ContainsRect(bounds) {
		panic(errors.New(errors.ErrCodeInternal, "floor %d: room bounds %v exceed floor %v", f.number, bounds, f.size))
	}
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			if other := f.cells[f.index(geom.Vec(x, y))]; other != nil {
				panic(errors.New(errors.ErrCodeInternal, "floor %d: cell (%d,%d) already belongs to %v", f.number, x, y, other))
			}
		}
	}

	room := &Room{floor: f, id: len(f.rooms), kind: kind, bounds: bounds}
	for p := range room.Cells() {
		f.cells[f.index(p)] = room
	}
	f.rooms = append(f.rooms, room)
	return room
}

// Validate checks that the cell map and the room registry agree: every room
// lies inside the floor, every cell of a room maps back to it, and no cell
// maps to an unregistered room.
func (f *Floor) Validate() error {
	owned := 0
	for _, r := range f.rooms {
		if !f.Bounds().ContainsRect(r.bounds) {
			return fmt.Errorf("floor %d: room %v outside floor %v", f.number, r, f.size)
		}
		for p := range r.Cells() {
			if got := f.cells[f.index(p)]; got != r {
				return fmt.Errorf("floor %d: cell %v maps to %v, want %v", f.number, p, got, r)
			}
		}
		owned += r.Area()
	}

	occupied := 0
	for _, c := range f.cells {
		if c != nil {
			occupied++
		}
	}
	if occupied != owned {
		return fmt.Errorf("floor %d: %d occupied cells but rooms cover %d", f.number, occupied, owned)
	}
	return nil
}

// CoveredArea returns the number of cells assigned to rooms.
func (f *Floor) CoveredArea() int {
	n := 0
	for _, r := range f.rooms {
		n += r.Area()
	}
	return n
}

func (f *Floor) index(p geom.Vector2Int) int { return p.Y*f.size.X + p.X }
