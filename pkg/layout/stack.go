package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

// Orientation is the direction in which a [Stack] lines up its children.
type Orientation int

const (
	Row Orientation = iota
	Column
	RowReverse
	ColumnReverse
)

var orientationNames = [...]string{"row", "column", "row_reverse", "column_reverse"}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// ParseOrientation parses a name produced by [Orientation.String]. Dashes
// are accepted in place of underscores.
func ParseOrientation(s string) (Orientation, error) {
	norm := strings.ReplaceAll(strings.ToLower(s), "-", "_")
	for i, n := range orientationNames {
		if n == norm {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stack orientation %q", s)
}

// Axis returns the main axis.
func (o Orientation) Axis() geom.Axis {
	if o == Row || o == RowReverse {
		return geom.Horizontal
	}
	return geom.Vertical
}

// Reversed reports whether children are placed from the far edge.
func (o Orientation) Reversed() bool { return o == RowReverse || o == ColumnReverse }

// Stack places its children one after another along a main axis. Leftover
// main-axis space is shared by GrowWeight.
type Stack struct {
	Base
	Orientation Orientation
	Children    []Element
}

// NewStack returns a stack with the given orientation and children.
func NewStack(o Orientation, children []Element, opts ...Option) *Stack {
	s := &Stack{Base: newBase(), Orientation: o, Children: children}
	applyOptions(&s.Base, opts)
	return s
}

func (s *Stack) kind() string           { return "stack(" + s.Orientation.String() + ")" }
func (s *Stack) children() []Element    { return s.Children }
func (s *Stack) imprint(*plan.HouseLot) {}

func (s *Stack) measureOverride(available geom.Vector2Int) (geom.Vector2Int, error) {
	if len(s.Children) == 0 {
		errors.Configuration("stack %s has no children", Label(s))
	}
	axis := s.Orientation.Axis()
	remaining := available.Along(axis)
	main, cross := 0, 0
	for i, c := range s.Children {
		d, err := measureChild(c, i, available.With(axis, remaining))
		if err != nil {
			return geom.Zero, err
		}
		main += d.Along(axis)
		cross = max(cross, d.Along(axis.Cross()))
		remaining -= d.Along(axis)
	}
	return geom.Zero.With(axis, main).With(axis.Cross(), cross), nil
}

func (s *Stack) arrangeOverride(final geom.RectInt) (geom.RectInt, error) {
	axis := s.Orientation.Axis()
	size := final.Size()

	desired := 0
	weights := make([]float64, len(s.Children))
	for i, c := range s.Children {
		desired += c.Node().desired.Along(axis)
		weights[i] = c.Node().GrowWeight
	}
	remaining := size.Along(axis) - desired
	if remaining < 0 {
		return geom.RectInt{}, &OverflowError{
			Phase:     PhaseArrange,
			Desired:   size.With(axis, desired),
			Available: size,
		}
	}
	extra := distribute(remaining, weights)

	offset := 0
	for i, c := range s.Children {
		n := c.Node().desired.Along(axis) + extra[i]
		start := offset
		if s.Orientation.Reversed() {
			start = size.Along(axis) - offset - n
		}
		var r geom.RectInt
		if axis == geom.Horizontal {
			r = geom.NewRect(final.X+start, final.Y, n, final.Height)
		} else {
			r = geom.NewRect(final.X, final.Y+start, final.Width, n)
		}
		if err := arrangeChild(&s.Base, c, i, r); err != nil {
			return geom.RectInt{}, err
		}
		offset += n
	}
	return final, nil
}

// distribute splits remaining across weights. Each positive weight gets
// floor(remaining*w/sum); the rounding leftover goes one unit at a time to
// weighted entries in order. The result sums to remaining unless no weight
// is positive, in which case everything is zero.
func distribute(remaining int, weights []float64) []int {
	out := make([]int, len(weights))
	sum := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			errors.Configuration("grow weight %v must be a finite non-negative number", w)
		}
		sum += w
	}
	if remaining <= 0 || sum == 0 {
		return out
	}

	given := 0
	for i, w := range weights {
		if w > 0 {
			out[i] = int(math.Floor(float64(remaining) * w / sum))
			given += out[i]
		}
	}
	for left := remaining - given; left > 0; {
		for i, w := range weights {
			if left == 0 {
				break
			}
			if w > 0 {
				out[i]++
				left--
			}
		}
	}
	return out
}
