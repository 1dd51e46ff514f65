package layout

import (
	"fmt"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

// Room is a leaf requesting a typed room of at least MinSize and at most
// MaxSize cells.
type Room struct {
	Base
	Type    plan.RoomType
	MinSize geom.Vector2Int
	MaxSize geom.Vector2Int
}

// Option configures a node built by one of the constructors.
type Option func(*Base)

// WithName sets the node label.
func WithName(name string) Option { return func(b *Base) { b.Name = name } }

// WithWeight sets the grow weight.
func WithWeight(w float64) Option { return func(b *Base) { b.GrowWeight = w } }

// WithFlip sets the mirror flags.
func WithFlip(x, y bool) Option { return func(b *Base) { b.FlipX, b.FlipY = x, y } }

// WithRotation sets the clockwise rotation in quarter turns.
func WithRotation(quarters int) Option { return func(b *Base) { b.Rotation = quarters } }

// WithDock sets the dock edge.
func WithDock(d DockEdge) Option { return func(b *Base) { b.Dock = d } }

func applyOptions(b *Base, opts []Option) {
	for _, o := range opts {
		o(b)
	}
}

// NewRoom returns a room of the given type with MinSize min and an
// unbounded MaxSize.
func NewRoom(kind plan.RoomType, min geom.Vector2Int, opts ...Option) *Room {
	r := &Room{Base: newBase(), Type: kind, MinSize: min, MaxSize: geom.MaxVector}
	applyOptions(&r.Base, opts)
	return r
}

func (r *Room) kind() string        { return "room(" + r.Type.String() + ")" }
func (r *Room) children() []Element { return nil }

func (r *Room) validate() {
	if r.MinSize.X < 1 || r.MinSize.Y < 1 {
		errors.Configuration("room %s: minimum size %v below 1x1", Label(r), r.MinSize)
	}
	if !r.MinSize.Fits(r.maxSize()) {
		errors.Configuration("room %s: maximum size %v below minimum %v", Label(r), r.MaxSize, r.MinSize)
	}
}

// maxSize treats a zero MaxSize as unbounded so struct literals work.
func (r *Room) maxSize() geom.Vector2Int {
	if r.MaxSize == geom.Zero {
		return geom.MaxVector
	}
	return r.MaxSize
}

func (r *Room) measureOverride(geom.Vector2Int) (geom.Vector2Int, error) {
	r.validate()
	return r.MinSize, nil
}

func (r *Room) arrangeOverride(final geom.RectInt) (geom.RectInt, error) {
	if !r.MinSize.Fits(final.Size()) {
		return geom.RectInt{}, &OverflowError{
			Phase:     PhaseArrange,
			Desired:   r.MinSize,
			Available: final.Size(),
		}
	}
	return geom.RectFrom(final.Position(), final.Size().Min(r.maxSize())), nil
}

func (r *Room) imprint(lot *plan.HouseLot) {
	lot.GroundFloor().AddRoom(r.bounds, r.Type)
}

func (r *Room) String() string {
	return fmt.Sprintf("%s min=%v", Label(r), r.MinSize)
}
