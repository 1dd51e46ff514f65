// Package generator drives the layout engine to produce floor plans.
//
// A generation pass runs a fixed sequence over a fresh tree:
//
//  1. Expand: the component builds a layout tree for the plot interior.
//  2. Measure: the tree, wrapped in the margin padding, is measured
//     against the full plot.
//  3. Transform: flip and rotation matrices are composed from the root.
//  4. Arrange: the root is placed into the plot rectangle.
//  5. Imprint: leaf rooms are committed to a new [plan.HouseLot].
//
// A layout overflow at any step abandons the pass before anything is
// imprinted. [Generator.Generate] retries with a context derived from the
// base seed and the attempt number, so a run is reproducible from its seed
// alone. When every attempt overflows it returns a [*FailureError] carrying
// the last overflow.
//
// # Usage
//
//	gen := generator.New(nil, cache, nil, logger)
//	res, err := gen.Generate(ctx, generator.Options{Width: 12, Height: 8, Seed: 42})
//	if err != nil {
//	    var fail *generator.FailureError
//	    if errors.As(err, &fail) {
//	        // fail.Last.Desired vs fail.Last.Available
//	    }
//	}
//	for _, room := range res.Lot.GroundFloor().Rooms() {
//	    fmt.Println(room.Type(), room.Bounds())
//	}
package generator
