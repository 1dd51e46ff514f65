package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

// ASCIIOption configures [RenderASCII].
type ASCIIOption func(*asciiRenderer)

type asciiRenderer struct {
	color  bool
	ids    bool
	legend bool
}

// WithColor colours each cell by room type with lipgloss.
func WithColor() ASCIIOption { return func(r *asciiRenderer) { r.color = true } }

// WithRoomIDs draws each room's ID (base 36) instead of its type glyph, so
// neighbouring rooms of the same type stay distinguishable.
func WithRoomIDs() ASCIIOption { return func(r *asciiRenderer) { r.ids = true } }

// WithLegend appends one line per room: glyph, ID, type and bounds.
func WithLegend() ASCIIOption { return func(r *asciiRenderer) { r.legend = true } }

// RenderASCII draws the floor one character per cell, row by row. Cells
// not covered by a room are garden.
func RenderASCII(f *plan.Floor, opts ...ASCIIOption) string {
	var r asciiRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var sb strings.Builder
	size := f.Size()
	for y := range size.Y {
		for x := 0; x < size.X; {
			room := f.GetRoom(geom.Vec(x, y))
			// Batch runs of the same room so colour codes stay short.
			end := x + 1
			for end < size.X && f.GetRoom(geom.Vec(end, y)) == room {
				end++
			}
			sb.WriteString(r.cells(room, end-x))
			x = end
		}
		sb.WriteByte('\n')
	}

	if r.legend {
		for _, room := range f.Rooms() {
			fmt.Fprintf(&sb, "%s %2d %-12s %v\n", r.cells(room, 1), room.ID(), room.Type(), room.Bounds())
		}
	}
	return sb.String()
}

func (r *asciiRenderer) cells(room *plan.Room, n int) string {
	kind := plan.Garden
	if room != nil {
		kind = room.Type()
	}
	sw := swatchFor(kind)
	ch := string(sw.glyph)
	if r.ids && room != nil {
		ch = strings.ToUpper(strconv.FormatInt(int64(room.ID()%36), 36))
	}
	s := strings.Repeat(ch, n)
	if !r.color {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(sw.term)).Render(s)
}
