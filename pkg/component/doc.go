// Package component turns a target rectangle and a seeded [Context] into a
// layout tree.
//
// A [Component] is a house archetype. Expand must be a pure function of the
// bounds and the context's random state: expanding twice from the same seed
// and bounds yields trees that [layout.Dump] renders identically.
//
// Built-in archetypes:
//
//   - tiny: a living room next to a cross-axis stack of bedroom and kitchen
//   - two-room: a living room and a bedroom splitting the main axis at a
//     Gaussian ratio
//   - family: a hallway along the long side with public rooms on one end
//     and two to four bedrooms plus a bathroom on the other
//
// Components are looked up by name through a [Registry]. A component may
// implement [Weighter] to change its share when the generator picks among
// the archetypes that fit.
package component
