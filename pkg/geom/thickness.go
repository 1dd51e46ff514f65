package geom

import "fmt"

// ThicknessInt is an asymmetric inset, one value per edge.
type ThicknessInt struct {
	Left   int `json:"left" toml:"left"`
	Top    int `json:"top" toml:"top"`
	Right  int `json:"right" toml:"right"`
	Bottom int `json:"bottom" toml:"bottom"`
}

// Uniform returns a thickness of n on every edge.
func Uniform(n int) ThicknessInt { return ThicknessInt{n, n, n, n} }

// Symmetric returns a thickness of h on the left and right edges and v on
// the top and bottom edges.
func Symmetric(h, v int) ThicknessInt { return ThicknessInt{h, v, h, v} }

// Thickness parses the CSS-like shorthand used in flags and config files:
// one value (all edges), two values (horizontal, vertical) or four values
// (left, top, right, bottom).
func Thickness(values ...int) (ThicknessInt, error) {
	switch len(values) {
	case 1:
		return Uniform(values[0]), nil
	case 2:
		return Symmetric(values[0], values[1]), nil
	case 4:
		return ThicknessInt{values[0], values[1], values[2], values[3]}, nil
	default:
		return ThicknessInt{}, fmt.Errorf("thickness takes 1, 2 or 4 values, got %d", len(values))
	}
}

// Horizontal returns Left+Right.
func (t ThicknessInt) Horizontal() int { return t.Left + t.Right }

// Vertical returns Top+Bottom.
func (t ThicknessInt) Vertical() int { return t.Top + t.Bottom }

// Total returns the combined width and height consumed by t.
func (t ThicknessInt) Total() Vector2Int { return Vector2Int{t.Horizontal(), t.Vertical()} }

// IsZero reports whether every edge is zero.
func (t ThicknessInt) IsZero() bool { return t == ThicknessInt{} }

func (t ThicknessInt) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", t.Left, t.Top, t.Right, t.Bottom)
}
