// Package morton implements 2D Morton (Z-order) bit interleaving for 16-bit
// lanes packed into a 32-bit word.
//
// Layout:
//
//	bit:  31 30 ... 3  2  1  0
//	lane:  y  x ... y  x  y  x
//
// x occupies the even positions (EvenMask), y the odd ones (OddMask). All
// routines are branch-free shift/mask sequences with fixed widths, so codes
// are reproducible on every platform.
package morton
