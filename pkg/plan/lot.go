package plan

import (
	"fmt"

	"github.com/matzehuels/architectus/pkg/geom"
)

// HouseLot is a buildable plot with one or more floors.
type HouseLot struct {
	size   geom.Vector2Int
	floors []*Floor
}

// NewHouseLot creates a lot of the given size with an empty ground floor.
func NewHouseLot(size geom.Vector2Int) *HouseLot {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("plan: invalid lot size %v", size))
	}
	lot := &HouseLot{size: size}
	lot.floors = append(lot.floors, newFloor(lot, 0))
	return lot
}

// Size returns the plot dimensions.
func (l *HouseLot) Size() geom.Vector2Int { return l.size }

// Floors returns the floors ordered by number.
func (l *HouseLot) Floors() []*Floor { return l.floors }

// GroundFloor returns floor 0.
func (l *HouseLot) GroundFloor() *Floor { return l.floors[0] }

// Floor returns the floor with the given number. It panics if n is out of range.
func (l *HouseLot) Floor(n int) *Floor { return l.floors[n] }

// AddFloor appends an empty floor and returns it.
func (l *HouseLot) AddFloor() *Floor {
	f := newFloor(l, len(l.floors))
	l.floors = append(l.floors, f)
	return f
}

// Validate runs [Floor.Validate] on every floor.
func (l *HouseLot) Validate() error {
	for _, f := range l.floors {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}
