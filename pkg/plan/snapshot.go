package plan

import (
	"time"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
)

// Snapshot is the serialisable form of a generated lot. It is what the
// cache, the plan store and the JSON renderer exchange.
type Snapshot struct {
	ID        string          `json:"id,omitempty" bson:"_id,omitempty"`
	Seed      uint64          `json:"seed" bson:"seed"`
	Component string          `json:"component,omitempty" bson:"component,omitempty"`
	Size      geom.Vector2Int `json:"size" bson:"size"`
	Floors    []FloorSnapshot `json:"floors" bson:"floors"`
	CreatedAt time.Time       `json:"created_at,omitzero" bson:"created_at,omitempty"`
}

// FloorSnapshot lists a floor's rooms in registry order.
type FloorSnapshot struct {
	Number int            `json:"number" bson:"number"`
	Rooms  []RoomSnapshot `json:"rooms" bson:"rooms"`
}

// RoomSnapshot is one room of a [FloorSnapshot].
type RoomSnapshot struct {
	Type   RoomType     `json:"type" bson:"type"`
	Bounds geom.RectInt `json:"bounds" bson:"bounds"`
}

// Snapshot captures the lot's floors and rooms. Metadata fields (ID, Seed,
// Component, CreatedAt) are left for the caller to fill.
func (l *HouseLot) Snapshot() *Snapshot {
	s := &Snapshot{Size: l.size, Floors: make([]FloorSnapshot, 0, len(l.floors))}
	for _, f := range l.floors {
		fs := FloorSnapshot{Number: f.number, Rooms: make([]RoomSnapshot, 0, len(f.rooms))}
		for _, r := range f.rooms {
			fs.Rooms = append(fs.Rooms, RoomSnapshot{Type: r.kind, Bounds: r.bounds})
		}
		s.Floors = append(s.Floors, fs)
	}
	return s
}

// FromSnapshot rebuilds a lot by replaying every room through
// [Floor.AddRoom]. Unlike AddRoom it reports bad data as an
// [errors.ErrCodeInvalidFormat] error, since snapshots come from outside
// the process.
func FromSnapshot(s *Snapshot) (lot *HouseLot, err error) {
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "nil snapshot")
	}
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid snapshot size %v", s.Size)
	}
	if len(s.Floors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "snapshot has no floors")
	}

	defer func() {
		if r := recover(); r != nil {
			lot = nil
			if e, ok := r.(*errors.Error); ok {
				err = errors.Wrap(errors.ErrCodeInvalidFormat, e, "replay snapshot")
				return
			}
			panic(r)
		}
	}()

	lot = NewHouseLot(s.Size)
	for i, fs := range s.Floors {
		if fs.Number != i {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "floor %d listed at position %d", fs.Number, i)
		}
		f := lot.GroundFloor()
		if i > 0 {
			f = lot.AddFloor()
		}
		for _, rs := range fs.Rooms {
			f.AddRoom(rs.Bounds, rs.Type)
		}
	}
	return lot, nil
}
