package render

import "github.com/matzehuels/architectus/pkg/plan"

// swatch is the fixed presentation of one room type.
type swatch struct {
	glyph rune
	fill  string // SVG and DOT fill
	term  string // ANSI 256 colour for the terminal
}

var palette = map[plan.RoomType]swatch{
	plan.Garden:     {'.', "#d8ecc4", "107"},
	plan.LivingRoom: {'L', "#f6d6a8", "215"},
	plan.Bedroom:    {'B', "#b9d3f0", "75"},
	plan.Kitchen:    {'K', "#f3b6a5", "167"},
	plan.Bathroom:   {'W', "#a8e0dc", "73"},
	plan.Corridor:   {'C', "#e2e2e2", "250"},
	plan.DiningRoom: {'D', "#f0e2a0", "220"},
	plan.Office:     {'O', "#d6c4ec", "141"},
}

func swatchFor(t plan.RoomType) swatch {
	if s, ok := palette[t]; ok {
		return s
	}
	return swatch{'?', "#ffffff", "255"}
}

// Glyph returns the ASCII character used for a room type.
func Glyph(t plan.RoomType) rune { return swatchFor(t).glyph }
