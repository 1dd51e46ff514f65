package plan

import (
	"cmp"
	"slices"

	"github.com/matzehuels/architectus/pkg/geom"
)

// Adjacency is a pair of rooms that share at least one cell edge.
// A always has the lower room ID.
type Adjacency struct {
	A, B *Room
	// Shared is the number of unit edges along which the rooms touch.
	Shared int
}

// Adjacencies returns every pair of rooms on f that share a wall, ordered
// by (A.ID, B.ID).
func (f *Floor) Adjacencies() []Adjacency {
	type key struct{ a, b int }
	shared := make(map[key]int)

	visit := func(p, q geom.Vector2Int) {
		r1, r2 := f.GetRoom(p), f.GetRoom(q)
		if r1 == nil || r2 == nil || r1 == r2 {
			return
		}
		if r1.id > r2.id {
			r1, r2 = r2, r1
		}
		shared[key{r1.id, r2.id}]++
	}
	for y := 0; y < f.size.Y; y++ {
		for x := 0; x < f.size.X; x++ {
			p := geom.Vec(x, y)
			if x+1 < f.size.X {
				visit(p, geom.Vec(x+1, y))
			}
			if y+1 < f.size.Y {
				visit(p, geom.Vec(x, y+1))
			}
		}
	}

	out := make([]Adjacency, 0, len(shared))
	for k, n := range shared {
		out = append(out, Adjacency{A: f.rooms[k.a], B: f.rooms[k.b], Shared: n})
	}
	slices.SortFunc(out, func(x, y Adjacency) int {
		if c := cmp.Compare(x.A.id, y.A.id); c != 0 {
			return c
		}
		return cmp.Compare(x.B.id, y.B.id)
	})
	return out
}

// Neighbors returns the rooms adjacent to r in ID order.
func (f *Floor) Neighbors(r *Room) []*Room {
	var out []*Room
	for _, a := range f.Adjacencies() {
		switch r {
		case a.A:
			out = append(out, a.B)
		case a.B:
			out = append(out, a.A)
		}
	}
	slices.SortFunc(out, func(x, y *Room) int { return cmp.Compare(x.id, y.id) })
	return out
}
