package geom

import (
	"fmt"
	"math"
)

// Vector2Int is an integer 2D point or size.
type Vector2Int struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

var (
	// Zero is the origin.
	Zero = Vector2Int{}

	// One is the unit size.
	One = Vector2Int{X: 1, Y: 1}

	// MaxVector is an effectively unbounded size.
	MaxVector = Vector2Int{X: math.MaxInt32, Y: math.MaxInt32}
)

// Vec returns the vector (x, y).
func Vec(x, y int) Vector2Int { return Vector2Int{X: x, Y: y} }

// Add returns v + o.
func (v Vector2Int) Add(o Vector2Int) Vector2Int { return Vector2Int{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2Int) Sub(o Vector2Int) Vector2Int { return Vector2Int{v.X - o.X, v.Y - o.Y} }

// Mul scales both components by k.
func (v Vector2Int) Mul(k int) Vector2Int { return Vector2Int{v.X * k, v.Y * k} }

// Min returns the component-wise minimum.
func (v Vector2Int) Min(o Vector2Int) Vector2Int { return Vector2Int{min(v.X, o.X), min(v.Y, o.Y)} }

// Max returns the component-wise maximum.
func (v Vector2Int) Max(o Vector2Int) Vector2Int { return Vector2Int{max(v.X, o.X), max(v.Y, o.Y)} }

// Clamp limits each component of v to the range [lo, hi].
func (v Vector2Int) Clamp(lo, hi Vector2Int) Vector2Int { return v.Max(lo).Min(hi) }

// Swap exchanges X and Y.
func (v Vector2Int) Swap() Vector2Int { return Vector2Int{v.Y, v.X} }

// Area returns X*Y, or 0 when either component is not positive.
func (v Vector2Int) Area() int {
	if v.X <= 0 || v.Y <= 0 {
		return 0
	}
	return v.X * v.Y
}

// Fits reports whether v fits inside o on both axes.
func (v Vector2Int) Fits(o Vector2Int) bool { return v.X <= o.X && v.Y <= o.Y }

// Along returns the component on the given axis.
func (v Vector2Int) Along(a Axis) int {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

// With returns v with the component on axis a replaced by n.
func (v Vector2Int) With(a Axis, n int) Vector2Int {
	if a == Horizontal {
		v.X = n
	} else {
		v.Y = n
	}
	return v
}

func (v Vector2Int) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

// Axis selects the horizontal or vertical direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
