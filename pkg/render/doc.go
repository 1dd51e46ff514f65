// Package render turns generated floors into text, images and graphs.
//
// # Formats
//
//   - ascii: one character per cell, optionally coloured with lipgloss
//   - svg: one rectangle per room, scaled by a cell size
//   - json: the [plan.Snapshot] exchange form
//   - dot: the room adjacency graph in Graphviz DOT
//   - graph: the adjacency graph laid out by Graphviz as SVG
//
// All renderers are read-only over the floor. [Render] dispatches on a
// format name for the CLI and the HTTP API.
//
//	out, err := render.Render(ctx, render.FormatSVG, snapshot, lot.GroundFloor())
//
// # Dependencies
//
// The graph format uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process; no external binary is needed.
package render
