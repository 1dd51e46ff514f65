package template

import (
	"github.com/matzehuels/architectus/pkg/component"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
	"github.com/matzehuels/architectus/pkg/plan"
	"github.com/matzehuels/architectus/pkg/rng"
)

var _ component.Component = (*Template)(nil)

// Expand builds a fresh layout tree. Random draws happen in depth-first
// declaration order, so the result depends only on the context's seed and
// bounds.
func (t *Template) Expand(bounds geom.RectInt, ctx *component.Context) layout.Element {
	return t.Root.build(bounds.Size(), ctx.Rand())
}

func (n *Node) build(size geom.Vector2Int, r *rng.Rand) layout.Element {
	var opts []layout.Option
	if n.Name != "" {
		opts = append(opts, layout.WithName(n.Name))
	}
	if n.Rotation != 0 {
		opts = append(opts, layout.WithRotation(n.Rotation))
		if n.Rotation%2 != 0 {
			size = size.Swap()
		}
	}
	if n.Dock != "" {
		d, _ := layout.ParseDockEdge(n.Dock)
		opts = append(opts, layout.WithDock(d))
	}
	switch {
	case n.WeightRange != nil:
		opts = append(opts, layout.WithWeight(samplers[n.Sampler].Sample(r, n.WeightRange[0], n.WeightRange[1])))
	case n.Weight != nil:
		opts = append(opts, layout.WithWeight(*n.Weight))
	}
	fx, fy := n.FlipX, n.FlipY
	if n.RandomFlip {
		fx = fx != r.Chance(0.5)
		fy = fy != r.Chance(0.5)
	}
	if fx || fy {
		opts = append(opts, layout.WithFlip(fx, fy))
	}

	switch n.Kind {
	case KindRoom:
		kind, _ := plan.ParseRoomType(n.Type)
		lo, _ := vector(n.Min, geom.One)
		room := layout.NewRoom(kind, lo, opts...)
		room.MaxSize, _ = vector(n.Max, geom.MaxVector)
		return room

	case KindStack:
		o := n.orientation(size, r)
		return layout.NewStack(o, n.buildChildren(size, r), opts...)

	case KindDock:
		d := layout.NewDock(n.buildChildren(size, r), opts...)
		if n.LastChildFill != nil {
			d.LastChildFill = *n.LastChildFill
		}
		return d

	case KindPadding:
		t, _ := geom.Thickness(n.Padding...)
		inner := size.Sub(t.Total())
		return layout.NewPadding(t, n.Children[0].build(inner, r), opts...)

	default:
		return layout.NewContent(n.Children[0].build(size, r), opts...)
	}
}

func (n *Node) orientation(size geom.Vector2Int, r *rng.Rand) layout.Orientation {
	if n.Orientation == "" || n.Orientation == OrientationAuto {
		if r.Axis(size) == geom.Horizontal {
			return layout.Row
		}
		return layout.Column
	}
	o, _ := layout.ParseOrientation(n.Orientation)
	return o
}

func (n *Node) buildChildren(size geom.Vector2Int, r *rng.Rand) []layout.Element {
	order := make([]int, len(n.Children))
	for i := range order {
		order[i] = i
	}
	if n.Shuffle {
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	out := make([]layout.Element, len(order))
	for i, idx := range order {
		out[i] = n.Children[idx].build(size, r)
	}
	return out
}
