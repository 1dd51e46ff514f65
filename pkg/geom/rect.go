package geom

import "fmt"

// RectInt is an axis-aligned integer rectangle covering the cells
// [X, X+Width) × [Y, Y+Height).
type RectInt struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// NewRect returns the rectangle at (x, y) with the given size.
func NewRect(x, y, width, height int) RectInt {
	return RectInt{X: x, Y: y, Width: width, Height: height}
}

// RectFrom returns the rectangle at pos with the given size.
func RectFrom(pos, size Vector2Int) RectInt {
	return RectInt{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Position returns the top-left corner.
func (r RectInt) Position() Vector2Int { return Vector2Int{r.X, r.Y} }

// Size returns (Width, Height).
func (r RectInt) Size() Vector2Int { return Vector2Int{r.Width, r.Height} }

// Right returns the exclusive right edge.
func (r RectInt) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r RectInt) Bottom() int { return r.Y + r.Height }

// Min returns the smallest corner, which differs from Position only for
// rectangles with negative extents.
func (r RectInt) Min() Vector2Int {
	return Vector2Int{min(r.X, r.Right()), min(r.Y, r.Bottom())}
}

// Max returns the largest corner (exclusive).
func (r RectInt) Max() Vector2Int {
	return Vector2Int{max(r.X, r.Right()), max(r.Y, r.Bottom())}
}

// IsEmpty reports whether the rectangle covers no cells.
func (r RectInt) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns the number of covered cells.
func (r RectInt) Area() int { return r.Size().Area() }

// Contains reports whether the cell p lies inside r.
func (r RectInt) Contains(p Vector2Int) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.Y >= lo.Y && p.X < hi.X && p.Y < hi.Y
}

// ContainsRect reports whether o lies entirely inside r.
func (r RectInt) ContainsRect(o RectInt) bool {
	lo, hi := r.Min(), r.Max()
	olo, ohi := o.Min(), o.Max()
	return olo.X >= lo.X && olo.Y >= lo.Y && ohi.X <= hi.X && ohi.Y <= hi.Y
}

// Overlaps reports whether r and o share at least one cell.
func (r RectInt) Overlaps(o RectInt) bool {
	lo, hi := r.Min(), r.Max()
	olo, ohi := o.Min(), o.Max()
	return olo.X < hi.X && ohi.X > lo.X && olo.Y < hi.Y && ohi.Y > lo.Y
}

// Deflate insets r by t.
func (r RectInt) Deflate(t ThicknessInt) RectInt {
	return RectInt{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  r.Width - t.Horizontal(),
		Height: r.Height - t.Vertical(),
	}
}

// Inflate grows r outward by t.
func (r RectInt) Inflate(t ThicknessInt) RectInt {
	return RectInt{
		X:      r.X - t.Left,
		Y:      r.Y - t.Top,
		Width:  r.Width + t.Horizontal(),
		Height: r.Height + t.Vertical(),
	}
}

// Translate moves r by d.
func (r RectInt) Translate(d Vector2Int) RectInt {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Corners returns the four grid-line corners of r, clockwise from top-left.
func (r RectInt) Corners() [4]Vector2Int {
	return [4]Vector2Int{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
		{r.X, r.Bottom()},
	}
}

// BoundingBox returns the smallest rectangle whose corners enclose all points.
// It returns the zero rectangle for no points.
func BoundingBox(points ...Vector2Int) RectInt {
	if len(points) == 0 {
		return RectInt{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return RectInt{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// SplitLeft cuts a strip of the given width from the left side of r and
// returns it together with the remainder. It panics if width is outside
// [0, r.Width].
func (r RectInt) SplitLeft(width int) (left, right RectInt) {
	if width < 0 || width > r.Width {
		panic(fmt.Sprintf("geom: split width %d outside [0,%d]", width, r.Width))
	}
	left = RectInt{r.X, r.Y, width, r.Height}
	right = RectInt{r.X + width, r.Y, r.Width - width, r.Height}
	return left, right
}

// SplitTop cuts a strip of the given height from the top of r and returns it
// together with the remainder. It panics if height is outside [0, r.Height].
func (r RectInt) SplitTop(height int) (top, bottom RectInt) {
	if height < 0 || height > r.Height {
		panic(fmt.Sprintf("geom: split height %d outside [0,%d]", height, r.Height))
	}
	top = RectInt{r.X, r.Y, r.Width, height}
	bottom = RectInt{r.X, r.Y + height, r.Width, r.Height - height}
	return top, bottom
}

// SplitRatioLeft splits r vertically so the left part takes ratio of the
// width, while keeping at least minLeft columns on the left and minRight on
// the right. It panics if the minimums cannot both be honoured or ratio is
// outside [0, 1].
func (r RectInt) SplitRatioLeft(minLeft, minRight int, ratio float64) (left, right RectInt) {
	if minLeft < 0 || minRight < 0 || minLeft+minRight > r.Width {
		panic(fmt.Sprintf("geom: minimums %d+%d exceed width %d", minLeft, minRight, r.Width))
	}
	if ratio < 0 || ratio > 1 {
		panic(fmt.Sprintf("geom: ratio %v outside [0,1]", ratio))
	}

	lw := int(float64(r.Width) * ratio)
	rw := r.Width - lw
	if lw < minLeft {
		lw = minLeft
	} else if rw < minRight {
		lw = r.Width - minRight
	}
	return r.SplitLeft(lw)
}

func (r RectInt) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.Width, r.Height)
}
