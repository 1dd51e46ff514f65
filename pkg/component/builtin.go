package component

import (
	"fmt"

	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
	"github.com/matzehuels/architectus/pkg/plan"
	"github.com/matzehuels/architectus/pkg/rng"
)

// Tiny is a living room beside a cross-axis stack holding a bedroom and a
// kitchen in random order.
type Tiny struct{}

func (Tiny) Name() string { return "tiny" }

func (Tiny) Expand(bounds geom.RectInt, ctx *Context) layout.Element {
	r := ctx.Rand()
	axis := r.Axis(bounds.Size())

	service := []layout.Element{
		layout.NewRoom(plan.Bedroom, geom.Vec(2, 2), layout.WithWeight(float64(rng.SampleInt(rng.Gaussian{}, r, 1, 3)))),
		layout.NewRoom(plan.Kitchen, geom.Vec(2, 2)),
	}
	if r.Chance(0.5) {
		service[0], service[1] = service[1], service[0]
	}

	living := layout.NewRoom(plan.LivingRoom, geom.Vec(3, 3),
		layout.WithWeight(rng.Gaussian{}.Sample(r, 1, 3)))
	rest := layout.NewStack(stackFor(axis.Cross(), false), service,
		layout.WithName("service"),
		layout.WithWeight(rng.Gaussian{}.Sample(r, 1, 3)))

	return layout.NewStack(stackFor(axis, r.Chance(0.5)), []layout.Element{living, rest},
		layout.WithName("tiny"))
}

// TwoRoom is a living room and a bedroom sharing the main axis. The living
// room takes a Gaussian share of the length, never squeezing either room
// below its minimum.
type TwoRoom struct{}

func (TwoRoom) Name() string { return "two-room" }

func (TwoRoom) Expand(bounds geom.RectInt, ctx *Context) layout.Element {
	const side = 3
	r := ctx.Rand()
	axis := r.Axis(bounds.Size())
	ratio := r.GaussianRatio()

	wl, wb := 1.0, 1.0
	if length := bounds.Size().Along(axis); length >= 2*side {
		left, right := geom.NewRect(0, 0, length, 1).SplitRatioLeft(side, side, ratio)
		wl, wb = float64(left.Width-side), float64(right.Width-side)
	}
	return layout.NewStack(stackFor(axis, false), []layout.Element{
		layout.NewRoom(plan.LivingRoom, geom.Vec(side, side), layout.WithWeight(wl)),
		layout.NewRoom(plan.Bedroom, geom.Vec(side, side), layout.WithWeight(wb)),
	}, layout.WithName("two-room"))
}

// Family runs a one-cell hallway along the long side of the house. Beside
// it the public zone (living room and kitchen) faces the private zone of
// bedrooms and a bathroom, laid out in columns of at most two rooms.
type Family struct {
	// Bedrooms fixes the bedroom count. Zero picks 2 to 4 at random.
	Bedrooms int
}

func (f Family) Name() string {
	if f.Bedrooms > 0 {
		return fmt.Sprintf("family-%d", f.Bedrooms)
	}
	return "family"
}

func (f Family) Expand(bounds geom.RectInt, ctx *Context) layout.Element {
	r := ctx.Rand()
	axis := geom.Horizontal
	if bounds.Height > bounds.Width {
		axis = geom.Vertical
	}
	bedrooms := f.Bedrooms
	if bedrooms <= 0 {
		bedrooms = r.Between(2, 4)
	}

	public := layout.NewStack(stackFor(axis.Cross(), r.Chance(0.5)), []layout.Element{
		layout.NewRoom(plan.LivingRoom, geom.Vec(3, 3), layout.WithWeight(2)),
		layout.NewRoom(plan.Kitchen, geom.Vec(2, 2), layout.WithWeight(1)),
	}, layout.WithName("public"), layout.WithWeight(1+r.GaussianRatio()))

	private := make([]layout.Element, 0, bedrooms+1)
	for range bedrooms {
		private = append(private, layout.NewRoom(plan.Bedroom, geom.Vec(2, 2)))
	}
	private = append(private, layout.NewRoom(plan.Bathroom, geom.Vec(2, 2), layout.WithWeight(0.5)))

	var columns []layout.Element
	for i := 0; i < len(private); i += 2 {
		columns = append(columns, layout.NewStack(stackFor(axis.Cross(), false), private[i:min(i+2, len(private))]))
	}
	privateZone := layout.NewStack(stackFor(axis, false), columns,
		layout.WithName("private"), layout.WithWeight(1+r.GaussianRatio()))

	hallEdge := layout.DockTop
	if axis == geom.Vertical {
		hallEdge = layout.DockLeft
	}
	if r.Chance(0.5) {
		hallEdge = opposite(hallEdge)
	}

	house := layout.NewDock([]layout.Element{
		layout.NewRoom(plan.Corridor, geom.One, layout.WithDock(hallEdge), layout.WithName("hall")),
		layout.NewStack(stackFor(axis, false), []layout.Element{public, privateZone}),
	}, layout.WithName(f.Name()))

	// Mirror along the main axis half the time so the public zone is not
	// always at the near end.
	flip := r.Chance(0.5)
	return layout.NewContent(house, layout.WithFlip(flip && axis == geom.Horizontal, flip && axis == geom.Vertical))
}

func opposite(d layout.DockEdge) layout.DockEdge {
	switch d {
	case layout.DockLeft:
		return layout.DockRight
	case layout.DockRight:
		return layout.DockLeft
	case layout.DockTop:
		return layout.DockBottom
	default:
		return layout.DockTop
	}
}
