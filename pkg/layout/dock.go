package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

// DockEdge is the side of a [Dock] a child attaches to.
type DockEdge int

const (
	DockLeft DockEdge = iota
	DockTop
	DockRight
	DockBottom
)

var dockNames = [...]string{"left", "top", "right", "bottom"}

func (d DockEdge) String() string {
	if d < 0 || int(d) >= len(dockNames) {
		return fmt.Sprintf("dock(%d)", int(d))
	}
	return dockNames[d]
}

// ParseDockEdge parses left, top, right or bottom.
func ParseDockEdge(s string) (DockEdge, error) {
	for i, n := range dockNames {
		if n == strings.ToLower(s) {
			return DockEdge(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dock edge %q", s)
}

// Dock peels a strip off one of its edges for each child in declaration
// order. With LastChildFill the last child receives whatever is left.
type Dock struct {
	Base
	LastChildFill bool
	Children      []Element
}

// NewDock returns a dock with LastChildFill enabled.
func NewDock(children []Element, opts ...Option) *Dock {
	d := &Dock{Base: newBase(), LastChildFill: true, Children: children}
	applyOptions(&d.Base, opts)
	return d
}

func (d *Dock) kind() string           { return "dock" }
func (d *Dock) children() []Element    { return d.Children }
func (d *Dock) imprint(*plan.HouseLot) {}

func (d *Dock) isFill(i int) bool { return d.LastChildFill && i == len(d.Children)-1 }

func (d *Dock) measureOverride(available geom.Vector2Int) (geom.Vector2Int, error) {
	if len(d.Children) == 0 {
		errors.Configuration("dock %s has no children", Label(d))
	}
	remaining := available
	for i, c := range d.Children {
		size, err := measureChild(c, i, remaining)
		if err != nil {
			return geom.Zero, err
		}
		if d.isFill(i) {
			break
		}
		switch c.Node().Dock {
		case DockLeft, DockRight:
			remaining.X -= size.X
		case DockTop, DockBottom:
			remaining.Y -= size.Y
		}
	}
	return available, nil
}

func (d *Dock) arrangeOverride(final geom.RectInt) (geom.RectInt, error) {
	rest := final
	for i, c := range d.Children {
		if d.isFill(i) {
			if err := arrangeChild(&d.Base, c, i, rest); err != nil {
				return geom.RectInt{}, err
			}
			break
		}

		want := c.Node().desired
		var strip geom.RectInt
		switch c.Node().Dock {
		case DockLeft, DockRight:
			if want.X > rest.Width {
				return geom.RectInt{}, d.overflow(want, rest)
			}
			if c.Node().Dock == DockLeft {
				strip, rest = rest.SplitLeft(want.X)
			} else {
				rest, strip = rest.SplitLeft(rest.Width - want.X)
			}
		case DockTop, DockBottom:
			if want.Y > rest.Height {
				return geom.RectInt{}, d.overflow(want, rest)
			}
			if c.Node().Dock == DockTop {
				strip, rest = rest.SplitTop(want.Y)
			} else {
				rest, strip = rest.SplitTop(rest.Height - want.Y)
			}
		default:
			errors.Configuration("dock %s: child %d has invalid edge %v", Label(d), i, c.Node().Dock)
		}
		if err := arrangeChild(&d.Base, c, i, strip); err != nil {
			return geom.RectInt{}, err
		}
	}
	return final, nil
}

func (d *Dock) overflow(want geom.Vector2Int, rest geom.RectInt) *OverflowError {
	return &OverflowError{Phase: PhaseArrange, Desired: want, Available: rest.Size()}
}
