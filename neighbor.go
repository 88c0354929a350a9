package geoquad

import (
	"fmt"
	"slices"

	"github.com/hupe1980/geoquad/internal/morton"
)

// Direction is one of the four cardinal moves on the grid.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// NorthOf returns the cell one latitude step north of code.
// The top row has no northern neighbor; moving past it fails with a
// *RangeError.
func (g *Grid) NorthOf(code Code) (Code, error) {
	return g.Neighbor(code, North)
}

// SouthOf returns the cell one latitude step south of code.
// The bottom row has no southern neighbor; moving past it fails with a
// *RangeError.
func (g *Grid) SouthOf(code Code) (Code, error) {
	return g.Neighbor(code, South)
}

// EastOf returns the cell one longitude step east of code, wrapping from the
// last column to the first.
func (g *Grid) EastOf(code Code) Code {
	next := g.east(code)
	g.metrics.RecordNeighbor(East, nil)
	return next
}

// WestOf returns the cell one longitude step west of code, wrapping from the
// first column to the last.
func (g *Grid) WestOf(code Code) Code {
	next := g.west(code)
	g.metrics.RecordNeighbor(West, nil)
	return next
}

// Neighbor returns the adjacent cell in direction dir.
func (g *Grid) Neighbor(code Code, dir Direction) (Code, error) {
	var (
		next Code
		ok   = true
	)
	switch dir {
	case North:
		next, ok = g.north(code)
	case South:
		next, ok = g.south(code)
	case East:
		next = g.east(code)
	case West:
		next = g.west(code)
	default:
		return 0, fmt.Errorf("unknown direction %d", uint8(dir))
	}

	var err error
	if !ok {
		err = &RangeError{Op: dir.String() + "of", Code: code, Reason: "latitude past the pole"}
		next = 0
	}
	g.metrics.RecordNeighbor(dir, err)
	return next, err
}

// Neighbors returns the up to eight cells around code, in the order N, NE,
// E, SE, S, SW, W, NW. Cells past a pole are omitted, as are repeats on
// grids too coarse to have eight distinct neighbors.
func (g *Grid) Neighbors(code Code) []Code {
	code = Code(uint32(code) & g.codeMask)
	out := make([]Code, 0, 8)
	add := func(c Code) {
		if c != code && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	n, hasN := g.north(code)
	s, hasS := g.south(code)

	if hasN {
		add(n)
		add(g.east(n))
	}
	add(g.east(code))
	if hasS {
		add(g.east(s))
		add(s)
		add(g.west(s))
	}
	add(g.west(code))
	if hasN {
		add(g.west(n))
	}
	return out
}

// The moves below rewrite one lane of the interleaved code and leave the
// other untouched, avoiding a full decode/encode round trip.

func (g *Grid) north(code Code) (Code, bool) {
	z := uint32(code) & g.codeMask
	lat := morton.Y(z)
	if uint32(lat) >= g.size-1 {
		return 0, false
	}
	return Code(morton.WithY(z, lat+1)), true
}

func (g *Grid) south(code Code) (Code, bool) {
	z := uint32(code) & g.codeMask
	lat := morton.Y(z)
	if lat == 0 {
		return 0, false
	}
	return Code(morton.WithY(z, lat-1)), true
}

func (g *Grid) east(code Code) Code {
	z := uint32(code) & g.codeMask
	lng := (uint32(morton.X(z)) + 1) & g.laneMask
	return Code(morton.WithX(z, uint16(lng)))
}

func (g *Grid) west(code Code) Code {
	z := uint32(code) & g.codeMask
	lng := (uint32(morton.X(z)) + g.size - 1) & g.laneMask
	return Code(morton.WithX(z, uint16(lng)))
}

// cardinal appends the on-grid 4-neighbors of code to dst.
func (g *Grid) cardinal(code Code, dst []Code) []Code {
	if n, ok := g.north(code); ok {
		dst = append(dst, n)
	}
	dst = append(dst, g.east(code))
	if s, ok := g.south(code); ok {
		dst = append(dst, s)
	}
	return append(dst, g.west(code))
}
