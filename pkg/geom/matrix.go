package geom

import "fmt"

// Matrix is an integer affine transform in row-vector form:
//
//	x' = x*A + y*C + Tx
//	y' = x*B + y*D + Ty
//
// The linear part only ever holds axis flips and quarter turns, so every
// coefficient is -1, 0 or 1 and transforms are exact.
type Matrix struct {
	A, B   int
	C, D   int
	Tx, Ty int
}

// Identity is the identity transform.
var Identity = Matrix{A: 1, D: 1}

// Scale returns a transform scaling X by sx and Y by sy. Only ±1 keeps the
// grid exact; other factors are accepted but not used by the engine.
func Scale(sx, sy int) Matrix { return Matrix{A: sx, D: sy} }

// Rotation returns a clockwise rotation by the given number of quarter turns
// about the origin (screen coordinates, Y down).
func Rotation(quarters int) Matrix {
	switch ((quarters % 4) + 4) % 4 {
	case 1:
		return Matrix{B: 1, C: -1}
	case 2:
		return Matrix{A: -1, D: -1}
	case 3:
		return Matrix{B: -1, C: 1}
	default:
		return Identity
	}
}

// Orientation returns the linear transform for a node that mirrors across
// the requested axes and then rotates by quarters clockwise.
func Orientation(flipX, flipY bool, quarters int) Matrix {
	sx, sy := 1, 1
	if flipX {
		sx = -1
	}
	if flipY {
		sy = -1
	}
	return Scale(sx, sy).Mul(Rotation(quarters))
}

// Mul returns the composition that applies m first and o second.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A:  m.A*o.A + m.B*o.C,
		B:  m.A*o.B + m.B*o.D,
		C:  m.C*o.A + m.D*o.C,
		D:  m.C*o.B + m.D*o.D,
		Tx: m.Tx*o.A + m.Ty*o.C + o.Tx,
		Ty: m.Tx*o.B + m.Ty*o.D + o.Ty,
	}
}

// Apply transforms the point p.
func (m Matrix) Apply(p Vector2Int) Vector2Int {
	return Vector2Int{
		X: p.X*m.A + p.Y*m.C + m.Tx,
		Y: p.X*m.B + p.Y*m.D + m.Ty,
	}
}

// TransformRect maps the four corners of r and returns their bounding box.
func (m Matrix) TransformRect(r RectInt) RectInt {
	c := r.Corners()
	return BoundingBox(m.Apply(c[0]), m.Apply(c[1]), m.Apply(c[2]), m.Apply(c[3]))
}

// Linear returns m without its translation.
func (m Matrix) Linear() Matrix {
	m.Tx, m.Ty = 0, 0
	return m
}

// SwapsAxes reports whether m maps the X axis onto the Y axis.
func (m Matrix) SwapsAxes() bool { return m.A == 0 }

// IsIdentity reports whether m is the identity.
func (m Matrix) IsIdentity() bool { return m == Identity }

// LocalFrame returns the rectangle, anchored at target's origin, that the
// linear part of m maps onto a rectangle of target's size. For axis-swapping
// transforms the width and height are exchanged.
func (m Matrix) LocalFrame(target RectInt) RectInt {
	if m.SwapsAxes() {
		return RectInt{X: target.X, Y: target.Y, Width: target.Height, Height: target.Width}
	}
	return target
}

// AnchorTo returns the linear part of m with a translation chosen so that
// m.LocalFrame(target) maps exactly onto target.
func (m Matrix) AnchorTo(target RectInt) Matrix {
	lin := m.Linear()
	img := lin.TransformRect(lin.LocalFrame(target))
	lin.Tx = target.X - img.X
	lin.Ty = target.Y - img.Y
	return lin
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%d %d; %d %d; %d %d]", m.A, m.B, m.C, m.D, m.Tx, m.Ty)
}
