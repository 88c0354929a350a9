// Package geoquad encodes geographic coordinates into fixed-precision
// Morton (Z-order) codes and provides the cell algebra a spatial index needs
// on top of them.
//
// A Code names a rectangular grid cell. Latitude and longitude are each
// quantized into 2^P buckets (P = Precision = 16 by default) and their bits
// are interleaved into one uint32, so codes of nearby cells share prefixes
// and sort along a Z-order curve.
//
// # Quick Start
//
//	code, err := geoquad.Create(52.5200, 13.4050)
//	center := geoquad.Parse(code)              // cell centroid
//	ok := geoquad.Contains(code, 52.52, 13.405) // true
//
// # Neighbors
//
//	north, err := geoquad.NorthOf(code) // ErrRange at the north pole
//	east := geoquad.EastOf(code)        // wraps at the antimeridian
//
// # Proximity
//
// Nearby enumerates every cell whose centre lies within a radius, given in
// degrees of great-circle arc, by breadth-first ring expansion:
//
//	cells, err := geoquad.Nearby(code, 0.05)
//	for c := range cells.All() {
//	    fmt.Println(c, geoquad.Parse(c))
//	}
//
// # Custom Grids
//
// Package-level functions use a shared default Grid. Use New to pick a
// coarser precision or tune the expansion budgets:
//
//	grid, err := geoquad.New(
//	    geoquad.WithPrecision(12),
//	    geoquad.WithMaxRings(1024),
//	    geoquad.WithLogger(geoquad.NewJSONLogger(slog.LevelDebug)),
//	)
//
// Codes produced by grids of different precision are not comparable.
//
// # Concurrency
//
// A Grid is immutable after construction and safe for concurrent use. All
// operations except CreateBatch are synchronous and CPU-bound.
package geoquad
