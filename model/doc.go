// Package model defines the value types shared by every geoquad package.
//
// # Types
//
//   - Coordinate: a (latitude, longitude) pair in decimal degrees
//   - Code: an interleaved grid cell identifier (uint32)
//   - Bounds: the rectangle a cell covers
//
// All types are plain values. They carry no grid configuration; interpreting
// a Code requires the Grid (precision) that produced it.
package model
