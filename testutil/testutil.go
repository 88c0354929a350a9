package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/geoquad/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uniform returns a pseudo-random number in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Coordinate returns a coordinate drawn uniformly from the lat/lng
// rectangle [-90, 90) x [-180, 180).
func (r *RNG) Coordinate() model.Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coordinateLocked()
}

func (r *RNG) coordinateLocked() model.Coordinate {
	return model.Coordinate{
		Lat: model.LatitudeMin + r.rand.Float64()*(model.LatitudeMax-model.LatitudeMin),
		Lng: model.LongitudeMin + r.rand.Float64()*(model.LongitudeMax-model.LongitudeMin),
	}
}

// Coordinates returns n uniform coordinates.
// Locks only once per call (preferred over calling Coordinate in a loop).
func (r *RNG) Coordinates(n int) []model.Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Coordinate, n)
	for i := range out {
		out[i] = r.coordinateLocked()
	}
	return out
}

// CoordinatesNear returns n coordinates within +/-spread degrees of center
// on each axis, clamped to the valid latitude range and wrapped in
// longitude.
func (r *RNG) CoordinatesNear(center model.Coordinate, spread float64, n int) []model.Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Coordinate, n)
	for i := range out {
		lat := center.Lat + (2*r.rand.Float64()-1)*spread
		lng := center.Lng + (2*r.rand.Float64()-1)*spread
		out[i] = model.Coordinate{Lat: clampLat(lat), Lng: wrapLng(lng)}
	}
	return out
}

func clampLat(lat float64) float64 {
	return min(model.LatitudeMax, max(model.LatitudeMin, lat))
}

func wrapLng(lng float64) float64 {
	for lng >= model.LongitudeMax {
		lng -= 360
	}
	for lng < model.LongitudeMin {
		lng += 360
	}
	return lng
}
