// Package plan holds the spatial data model of a generated house.
//
// A [HouseLot] owns an ordered list of [Floor]s sharing the lot size. The
// ground floor is created with the lot. Each floor maps every integer cell to
// at most one [Room] and keeps the registry of distinct rooms in the order
// they were added.
//
// Rooms are created only through [Floor.AddRoom] and never change afterwards.
// AddRoom treats out-of-range, empty or overlapping bounds as programming
// errors and panics: the layout engine guarantees disjoint rectangles, so a
// collision means a broken invariant rather than a bad input.
//
// Read-only consumers (renderers, the HTTP API, the preview) use
// [Floor.GetRoom], [Floor.Rooms] and [HouseLot.Snapshot].
package plan
