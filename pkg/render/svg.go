package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/architectus/pkg/plan"
)

// DefaultCellSize is the SVG edge length of one cell.
const DefaultCellSize = 24

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cell   int
	labels bool
	grid   bool
}

// WithCellSize sets the edge length of a cell in SVG units.
func WithCellSize(n int) SVGOption {
	return func(r *svgRenderer) {
		if n > 0 {
			r.cell = n
		}
	}
}

// WithLabels writes each room's type at its centre.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithGrid overlays the cell grid.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// RenderSVG draws the floor as a garden background with one rectangle per
// room, in registry order.
func RenderSVG(f *plan.Floor, opts ...SVGOption) []byte {
	r := svgRenderer{cell: DefaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}

	size := f.Size()
	w, h := size.X*r.cell, size.Y*r.cell

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect class="garden" x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n", w, h, swatchFor(plan.Garden).fill)

	for _, room := range f.Rooms() {
		b := room.Bounds()
		fmt.Fprintf(&buf, `  <rect id="room-%d" class="room %s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#333" stroke-width="2"/>`+"\n",
			room.ID(), room.Type(), b.X*r.cell, b.Y*r.cell, b.Width*r.cell, b.Height*r.cell, swatchFor(room.Type()).fill)
	}

	if r.grid {
		r.renderGrid(&buf, w, h)
	}

	if r.labels {
		for _, room := range f.Rooms() {
			b := room.Bounds()
			cx := float64(b.X*r.cell) + float64(b.Width*r.cell)/2
			cy := float64(b.Y*r.cell) + float64(b.Height*r.cell)/2
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="%d">%s</text>`+"\n",
				cx, cy, max(r.cell/2, 8), html.EscapeString(room.Type().String()))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderGrid(buf *bytes.Buffer, w, h int) {
	buf.WriteString(`  <g class="grid" stroke="#000" stroke-opacity="0.08">` + "\n")
	for x := r.cell; x < w; x += r.cell {
		fmt.Fprintf(buf, `    <line x1="%d" y1="0" x2="%d" y2="%d"/>`+"\n", x, x, h)
	}
	for y := r.cell; y < h; y += r.cell {
		fmt.Fprintf(buf, `    <line x1="0" y1="%d" x2="%d" y2="%d"/>`+"\n", y, w, y)
	}
	buf.WriteString("  </g>\n")
}
