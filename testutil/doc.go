// Package testutil provides testing utilities for geoquad.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Coordinates
//
//	rng := testutil.NewRNG(seed)
//	c := rng.Coordinate()                   // uniform over the valid range
//	pts := rng.Coordinates(1000)
//	near := rng.CoordinatesNear(center, 0.5, 100)
package testutil
