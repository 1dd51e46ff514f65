package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/plan"
)

// ToDOT converts the floor's adjacency graph to Graphviz DOT. Each room is
// a node labelled with its type and size; each pair of rooms sharing a wall
// is an edge labelled with the wall length.
func ToDOT(f *plan.Floor) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"sans-serif\", fontsize=12];\n")
	buf.WriteString("\n")

	for _, r := range f.Rooms() {
		b := r.Bounds()
		label := fmt.Sprintf("%s\n%dx%d", r.Type(), b.Width, b.Height)
		// neato honours pos! so the graph keeps the plan's arrangement.
		fmt.Fprintf(&buf, "  r%d [label=%q, fillcolor=%q, pos=\"%.1f,%.1f!\"];\n",
			r.ID(), label, swatchFor(r.Type()).fill,
			float64(b.X)+float64(b.Width)/2, -(float64(b.Y) + float64(b.Height)/2))
	}

	buf.WriteString("\n")
	for _, a := range f.Adjacencies() {
		fmt.Fprintf(&buf, "  r%d -- r%d [label=\"%d\"];\n", a.A.ID(), a.B.ID(), a.Shared)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderGraphSVG lays out a DOT graph with Graphviz and returns SVG.
func RenderGraphSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return buf.Bytes(), nil
}
