package layout

import (
	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

// Padding insets a single child by Thickness. It always claims the whole
// space it is offered.
type Padding struct {
	Base
	Thickness geom.ThicknessInt
	Child     Element
}

// NewPadding wraps child in the given thickness.
func NewPadding(t geom.ThicknessInt, child Element, opts ...Option) *Padding {
	p := &Padding{Base: newBase(), Thickness: t, Child: child}
	applyOptions(&p.Base, opts)
	return p
}

func (p *Padding) kind() string           { return "padding(" + p.Thickness.String() + ")" }
func (p *Padding) imprint(*plan.HouseLot) {}

func (p *Padding) children() []Element {
	if p.Child == nil {
		return nil
	}
	return []Element{p.Child}
}

func (p *Padding) measureOverride(available geom.Vector2Int) (geom.Vector2Int, error) {
	if p.Child == nil {
		errors.Configuration("padding %s has no child", Label(p))
	}
	if _, err := measureChild(p.Child, 0, available.Sub(p.Thickness.Total())); err != nil {
		return geom.Zero, err
	}
	return available, nil
}

func (p *Padding) arrangeOverride(final geom.RectInt) (geom.RectInt, error) {
	if err := arrangeChild(&p.Base, p.Child, 0, final.Deflate(p.Thickness)); err != nil {
		return geom.RectInt{}, err
	}
	return final, nil
}

// Content forwards layout to a single child unchanged. Its own flip and
// rotation make it a transform node for the subtree below it.
type Content struct {
	Base
	Child Element
}

// NewContent wraps child.
func NewContent(child Element, opts ...Option) *Content {
	c := &Content{Base: newBase(), Child: child}
	applyOptions(&c.Base, opts)
	return c
}

func (c *Content) kind() string           { return "content" }
func (c *Content) imprint(*plan.HouseLot) {}

func (c *Content) children() []Element {
	if c.Child == nil {
		return nil
	}
	return []Element{c.Child}
}

func (c *Content) measureOverride(available geom.Vector2Int) (geom.Vector2Int, error) {
	if c.Child == nil {
		errors.Configuration("content %s has no child", Label(c))
	}
	return measureChild(c.Child, 0, available)
}

func (c *Content) arrangeOverride(final geom.RectInt) (geom.RectInt, error) {
	if err := arrangeChild(&c.Base, c.Child, 0, final); err != nil {
		return geom.RectInt{}, err
	}
	return final, nil
}
