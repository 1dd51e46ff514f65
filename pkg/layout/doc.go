// Package layout resolves declarative trees of layout nodes into integer
// grid rectangles.
//
// # Passes
//
// A tree is resolved in four passes, always in this order:
//
//  1. [Measure] computes each node's desired size bottom-up against the
//     budget offered by its parent. A node whose intrinsic minimum does not
//     fit fails with an [*OverflowError]; sizes are never clamped.
//  2. [UpdateWorldMatrix] composes every node's orientation (FlipX, FlipY,
//     Rotation) with its ancestors', local first and parent second.
//  3. [Arrange] assigns rectangles top-down. Each node lays out its children
//     in its own local frame; the node's final Bounds are its local rectangle
//     mapped through its world matrix, corners first and bounding box second.
//  4. [Imprint] writes every [Room] leaf into the ground floor of a lot.
//
// Overflows unwind the whole pass. No node recovers a child's overflow, and
// Imprint is only called once Arrange has succeeded for the entire tree.
//
// # Node kinds
//
// [Room] is the only leaf. [Stack] lines children up along one axis and
// shares leftover space by GrowWeight. [Dock] peels strips off its edges.
// [Padding] insets a single child and [Content] passes one through unchanged,
// which makes it a convenient place to hang a flip or rotation.
//
// Malformed trees (a container without children, a room whose maximum is
// below its minimum, a negative weight) are programming errors and panic
// with an [errors.ErrCodeConfiguration] error.
package layout
