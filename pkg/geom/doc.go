// Package geom provides the integer geometry used by the floor plan engine.
//
// All coordinates live on an integer grid with the origin at the top-left
// corner and Y increasing downward. A [RectInt] covers the half-open cell
// range [X, X+Width) × [Y, Y+Height), so its corners are grid-line
// intersections and mirroring a rectangle never produces half cells.
//
// # Types
//
//   - [Vector2Int]: a point or a size
//   - [RectInt]: an axis-aligned rectangle
//   - [ThicknessInt]: asymmetric padding used to inset rectangles
//   - [Matrix]: an integer affine transform restricted to axis flips and
//     quarter-turn rotations
//
// # Transforms
//
// Matrices use the row-vector convention: a point p maps to p·M, so
// a.Mul(b) applies a first and b second. Composing a child's local
// transform with its parent's world transform is therefore written
// local.Mul(parentWorld).
//
// Rectangles are transformed by mapping their four corners and taking the
// bounding box:
//
//	m := geom.Orientation(true, false, 0).AnchorTo(geom.NewRect(0, 0, 10, 6))
//	r := m.TransformRect(geom.NewRect(1, 1, 4, 4)) // (5,1,4,4)
package geom
