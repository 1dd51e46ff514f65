package component

import (
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
)

// Component expands a target rectangle into a layout tree.
type Component interface {
	Name() string
	Expand(bounds geom.RectInt, ctx *Context) layout.Element
}

// Weighter is implemented by components whose share differs from 1 when
// the generator picks among the archetypes that fit a plot.
type Weighter interface {
	Weight() float64
}

// WeightOf returns the selection weight of c. Components that do not
// implement [Weighter], or report a non-positive weight, count as 1.
func WeightOf(c Component) float64 {
	if w, ok := c.(Weighter); ok && w.Weight() > 0 {
		return w.Weight()
	}
	return 1
}

// Hasher is implemented by components backed by editable data, such as
// templates. The hash changes whenever the expansion could.
type Hasher interface {
	Hash() string
}

// HashOf returns the content hash of c, or "" for components that do not
// implement [Hasher].
func HashOf(c Component) string {
	if h, ok := c.(Hasher); ok {
		return h.Hash()
	}
	return ""
}

// Func adapts a function to [Component].
type Func struct {
	ID string
	Fn func(bounds geom.RectInt, ctx *Context) layout.Element
	// Share is the selection weight. Zero means 1.
	Share float64
}

func (f Func) Name() string { return f.ID }

func (f Func) Weight() float64 { return f.Share }

func (f Func) Expand(bounds geom.RectInt, ctx *Context) layout.Element {
	return f.Fn(bounds, ctx)
}

// stackFor maps an axis to a forward or reversed stack orientation.
func stackFor(axis geom.Axis, reversed bool) layout.Orientation {
	switch {
	case axis == geom.Horizontal && !reversed:
		return layout.Row
	case axis == geom.Horizontal:
		return layout.RowReverse
	case !reversed:
		return layout.Column
	default:
		return layout.ColumnReverse
	}
}
