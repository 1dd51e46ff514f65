// Package pkg provides the core libraries for Architectus floor plan
// generation.
//
// # Overview
//
// Architectus turns a plot size and a seed into a house plan. An archetype
// expands the plot into a tree of layout elements, a two-pass layout engine
// sizes and places them, and the arranged rooms are stamped onto a cell grid.
//
// # Architecture
//
// The data flow through Architectus:
//
//	Archetype (built-in or TOML template)
//	         ↓
//	    [component] package (expand plot into a layout tree)
//	         ↓
//	    [layout] package (measure → world matrix → arrange → imprint)
//	         ↓
//	    [plan] package (lot, floors, rooms)
//	         ↓
//	    [render] package (ASCII, SVG, JSON, DOT, Graphviz SVG)
//
// [generator] drives the whole pass with retries, caching and hooks, and is
// shared by the CLI and the HTTP API.
//
// # Quick Start
//
//	gen := generator.New(component.Default(), nil, nil, nil)
//	res, err := gen.Generate(ctx, generator.Options{Width: 16, Height: 10, Seed: 42})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(render.RenderASCII(res.Lot.GroundFloor(), render.WithLegend()))
//
// # Main Packages
//
// [geom] - Integer vectors, rectangles, thickness and affine matrices.
//
// [rng] - Seeded PCG source with biased axis, Gaussian and uniform samplers
// and weighted selection.
//
// [layout] - Element tree (rooms, stacks, docks, paddings, splits), the
// measure/arrange passes and overflow errors.
//
// [component] - Archetypes and the registry the generator chooses from.
//
// [template] - TOML layout templates loaded as extra archetypes.
//
// [plan] - The spatial data model and its JSON/BSON snapshot.
//
// [render] - Output formats, including adjacency graphs through Graphviz.
//
// [cache] - Plan cache backends: null, file and Redis.
//
// [store] - Saved plan stores: memory, file and MongoDB.
//
// [config] - The TOML configuration file.
//
// [observability] - Generation, cache and HTTP hooks.
//
// [errors] - Error codes shared by the CLI and the HTTP API.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/geom
// [rng]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/rng
// [layout]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/layout
// [component]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/component
// [template]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/template
// [plan]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/plan
// [render]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/render
// [generator]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/generator
// [cache]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/architectus/pkg/errors
package pkg
