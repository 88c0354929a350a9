package geoquad

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/geoquad/cellset"
	"github.com/hupe1980/geoquad/distance"
	"github.com/hupe1980/geoquad/internal/queue"
)

// Nearby returns every cell whose centre lies within radius degrees of
// great-circle arc of the centre of code. The origin cell is always included
// for a non-negative radius.
//
// Cells are discovered by breadth-first ring expansion over the four
// cardinal moves, so diagonal cells are reached in two steps and longitude
// wraps at the antimeridian. Moves past a pole are skipped.
//
// A negative or NaN radius, a radius wider than the grid's ring bound, or an
// expansion visiting more cells than the cell bound fails with a
// *RangeError and no result.
func (g *Grid) Nearby(code Code, radius float64) (*cellset.Set, error) {
	start := time.Now()

	result := cellset.New()
	err := g.expand(code, radius, func(c Code, _ float64) {
		result.Add(c)
	})

	cells := 0
	if err != nil {
		result = nil
	} else {
		cells = result.Len()
	}

	g.metrics.RecordNearby(cells, time.Since(start), err)
	g.logger.LogNearby(context.Background(), code, radius, cells, err)
	return result, err
}

// NearbyKm is Nearby with the radius given as a surface distance in
// kilometres.
func (g *Grid) NearbyKm(code Code, km float64) (*cellset.Set, error) {
	return g.Nearby(code, distance.KilometersToDegrees(km))
}

// NearbySorted returns the same cells as Nearby ordered nearest first.
// Cells at equal distance are ordered by code.
func (g *Grid) NearbySorted(code Code, radius float64) ([]Code, error) {
	start := time.Now()

	pq := queue.NewMin(64)
	err := g.expand(code, radius, func(c Code, d float64) {
		pq.PushItem(queue.Item{Code: uint32(c), Distance: d})
	})
	if err != nil {
		g.metrics.RecordNearby(0, time.Since(start), err)
		g.logger.LogNearby(context.Background(), code, radius, 0, err)
		return nil, err
	}

	out := make([]Code, 0, pq.Len())
	for pq.Len() > 0 {
		it, _ := pq.PopItem()
		out = append(out, Code(it.Code))
	}

	g.metrics.RecordNearby(len(out), time.Since(start), nil)
	g.logger.LogNearby(context.Background(), code, radius, len(out), nil)
	return out, nil
}

// expand runs the ring expansion and calls visit once per cell within
// radius, with its distance in degrees from the origin centre.
//
// Every discovered cell is marked visited, but only cells within the radius
// are expanded further; the frontier drains once a ring adds nothing inside
// the radius.
func (g *Grid) expand(origin Code, radius float64, visit func(Code, float64)) error {
	if math.IsNaN(radius) || radius < 0 {
		return &RangeError{Op: "nearby", Code: origin, Reason: fmt.Sprintf("invalid radius %v", radius)}
	}
	if radius/g.latStep > float64(g.maxRings) {
		return &RangeError{Op: "nearby", Code: origin, Reason: fmt.Sprintf("radius %v exceeds %d rings", radius, g.maxRings)}
	}

	origin = Code(uint32(origin) & g.codeMask)
	center := g.Parse(origin)

	visited := cellset.New()
	visited.Add(origin)
	seen := 1

	frontier := queue.NewFIFO[Code](64)
	frontier.Push(origin)
	visit(origin, 0)

	var buf [4]Code
	for frontier.Len() > 0 {
		cur, _ := frontier.Pop()
		for _, next := range g.cardinal(cur, buf[:0]) {
			if !visited.CheckedAdd(next) {
				continue
			}
			seen++
			if seen > g.maxCells {
				return &RangeError{Op: "nearby", Code: origin, Reason: fmt.Sprintf("radius %v visits more than %d cells", radius, g.maxCells)}
			}

			d := distance.CentralAngle(center, g.Parse(next))
			if d > radius {
				continue
			}
			visit(next, d)
			frontier.Push(next)
		}
	}
	return nil
}
