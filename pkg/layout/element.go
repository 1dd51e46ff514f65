package layout

import (
	"errors"

	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

// Element is a node of a layout tree. The set of node kinds is closed:
// [Room], [Stack], [Padding], [Content] and [Dock].
type Element interface {
	// Node returns the state shared by every node kind.
	Node() *Base

	measureOverride(available geom.Vector2Int) (geom.Vector2Int, error)
	arrangeOverride(final geom.RectInt) (geom.RectInt, error)
	children() []Element
	imprint(lot *plan.HouseLot)
	kind() string
}

// Base holds the declared and computed state common to all nodes.
type Base struct {
	// Name labels the node in dumps and overflow paths.
	Name string

	FlipX bool
	FlipY bool
	// Rotation is the clockwise rotation in quarter turns.
	Rotation int

	// GrowWeight is the node's share of leftover space in a [Stack].
	GrowWeight float64
	// Dock is the edge the node attaches to inside a [Dock] container.
	Dock DockEdge

	desired geom.Vector2Int
	bounds  geom.RectInt
	parent  geom.Matrix
	world   geom.Matrix
}

func newBase() Base {
	return Base{GrowWeight: 1, parent: geom.Identity, world: geom.Identity}
}

// Node implements [Element].
func (b *Base) Node() *Base { return b }

// DesiredSize is the size computed by the last [Measure].
func (b *Base) DesiredSize() geom.Vector2Int { return b.desired }

// Bounds is the world-space rectangle computed by the last [Arrange].
func (b *Base) Bounds() geom.RectInt { return b.bounds }

// WorldMatrix is the accumulated transform from the node's local frame to
// world space.
func (b *Base) WorldMatrix() geom.Matrix { return b.world }

// LocalTransform returns the node's own flip and rotation as a linear transform.
func (b *Base) LocalTransform() geom.Matrix {
	return geom.Orientation(b.FlipX, b.FlipY, b.Rotation)
}

func (b *Base) swapsAxes() bool { return b.Rotation%2 != 0 }

// Measure computes the desired size of e for the given available size, in
// the caller's frame.
func Measure(e Element, available geom.Vector2Int) (geom.Vector2Int, error) {
	b := e.Node()
	if available.X < 0 || available.Y < 0 {
		return geom.Zero, newOverflow(PhaseMeasure, e, geom.Zero, available)
	}

	local := available
	if b.swapsAxes() {
		local = local.Swap()
	}
	desired, err := e.measureOverride(local)
	if err != nil {
		return geom.Zero, prependPath(err, e)
	}
	if !desired.Fits(local) {
		return geom.Zero, newOverflow(PhaseMeasure, e, desired, local)
	}
	if b.swapsAxes() {
		desired = desired.Swap()
	}
	b.desired = desired
	return desired, nil
}

// UpdateWorldMatrix composes the orientation of e and all its descendants
// with parent, fixing the linear part of every world matrix and binding the
// root to parent. Translation is settled later by [Arrange], which rebuilds
// each world matrix from the arranged parent; the linear part it arrives at
// is the one computed here.
func UpdateWorldMatrix(e Element, parent geom.Matrix) {
	b := e.Node()
	b.parent = parent
	b.world = b.LocalTransform().Mul(parent)
	for _, c := range e.children() {
		UpdateWorldMatrix(c, b.world)
	}
}

// Arrange places e into final, a rectangle in the parent's local frame, and
// returns the node's world-space bounds. The world matrix of e and of every
// descendant is recomputed here as the local orientation anchored to its
// final rectangle, composed with the parent's arranged world matrix.
func Arrange(e Element, final geom.RectInt) (geom.RectInt, error) {
	b := e.Node()
	orient := b.LocalTransform()
	b.world = orient.AnchorTo(final).Mul(b.parent)

	local, err := e.arrangeOverride(orient.LocalFrame(final))
	if err != nil {
		return geom.RectInt{}, prependPath(err, e)
	}
	b.bounds = b.world.TransformRect(local)
	return b.bounds, nil
}

// arrangeChild binds child to the parent's settled world matrix and
// arranges it.
func arrangeChild(parent *Base, child Element, index int, final geom.RectInt) error {
	child.Node().parent = parent.world
	if _, err := Arrange(child, final); err != nil {
		return atIndex(err, index)
	}
	return nil
}

func measureChild(child Element, index int, available geom.Vector2Int) (geom.Vector2Int, error) {
	d, err := Measure(child, available)
	if err != nil {
		return geom.Zero, atIndex(err, index)
	}
	return d, nil
}

// Imprint commits every room of the tree to the lot's ground floor.
func Imprint(e Element, lot *plan.HouseLot) {
	e.imprint(lot)
	for _, c := range e.children() {
		Imprint(c, lot)
	}
}

// Walk calls fn for e and every descendant in depth-first declaration
// order, passing the depth of each node.
func Walk(e Element, fn func(e Element, depth int)) {
	var walk func(Element, int)
	walk = func(e Element, d int) {
		fn(e, d)
		for _, c := range e.children() {
			walk(c, d+1)
		}
	}
	walk(e, 0)
}

// Children returns the direct children of e.
func Children(e Element) []Element {
	return e.children()
}

// Label returns the node's name, or its kind when it has none.
func Label(e Element) string {
	if n := e.Node().Name; n != "" {
		return n
	}
	return e.kind()
}

// AsOverflow returns the first [*OverflowError] in err's chain.
func AsOverflow(err error) (*OverflowError, bool) {
	var oe *OverflowError
	ok := errors.As(err, &oe)
	return oe, ok
}
