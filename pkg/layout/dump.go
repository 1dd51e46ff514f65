package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/architectus/pkg/geom"
)

// Dump renders the tree as indented text, one node per line, with the
// declared attributes and whatever the passes have computed so far. Two
// trees built from the same seed dump identically.
func Dump(e Element) string {
	var sb strings.Builder
	dump(&sb, e, 0, false)
	return sb.String()
}

func dump(sb *strings.Builder, e Element, depth int, docked bool) {
	b := e.Node()
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(Label(e))
	if b.Name != "" {
		fmt.Fprintf(sb, " <%s>", e.kind())
	}

	switch n := e.(type) {
	case *Room:
		fmt.Fprintf(sb, " min=%v", n.MinSize)
		if max := n.maxSize(); max != geom.MaxVector {
			fmt.Fprintf(sb, " max=%v", max)
		}
	case *Dock:
		if !n.LastChildFill {
			sb.WriteString(" nofill")
		}
	}

	sb.WriteString(" w=" + strconv.FormatFloat(b.GrowWeight, 'g', -1, 64))
	if b.FlipX {
		sb.WriteString(" flipx")
	}
	if b.FlipY {
		sb.WriteString(" flipy")
	}
	if b.Rotation != 0 {
		fmt.Fprintf(sb, " rot=%d", b.Rotation)
	}
	if docked {
		sb.WriteString(" dock=" + b.Dock.String())
	}
	fmt.Fprintf(sb, " desired=%v bounds=%v\n", b.desired, b.bounds)

	_, isDock := e.(*Dock)
	for _, c := range e.children() {
		dump(sb, c, depth+1, isDock)
	}
}
