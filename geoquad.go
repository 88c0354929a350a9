package geoquad

import (
	"github.com/hupe1980/geoquad/cellset"
	"github.com/hupe1980/geoquad/distance"
	"github.com/hupe1980/geoquad/internal/morton"
	"github.com/hupe1980/geoquad/model"
)

// Code identifies one grid cell.
type Code = model.Code

// Coordinate is a (latitude, longitude) pair in decimal degrees.
type Coordinate = model.Coordinate

// Bounds is the rectangle covered by a cell.
type Bounds = model.Bounds

const (
	// Precision is the default number of bits per axis. Codes of the default
	// grid use all 32 bits.
	Precision = morton.MaxBits

	// GeoquadStep is the cell height in degrees of latitude at the default
	// precision.
	GeoquadStep = (LatitudeMax - LatitudeMin) / (1 << Precision)

	// LongitudeStep is the cell width in degrees of longitude at the default
	// precision. Both axes use 2^Precision buckets, so it is 2*GeoquadStep.
	LongitudeStep = (LongitudeMax - LongitudeMin) / (1 << Precision)

	LatitudeMin  = model.LatitudeMin
	LatitudeMax  = model.LatitudeMax
	LongitudeMin = model.LongitudeMin
	LongitudeMax = model.LongitudeMax

	// DefaultMaxRings is the default Nearby radius bound in latitude steps.
	DefaultMaxRings = 512

	// DefaultMaxCells is the default number of cells one Nearby call may visit.
	DefaultMaxCells = 1 << 20
)

// Grid quantizes coordinates at a fixed precision and implements the cell
// algebra on the resulting codes.
type Grid struct {
	precision uint
	size      uint32 // buckets per axis
	laneMask  uint32
	codeMask  uint32
	latStep   float64
	lngStep   float64

	maxRings         int
	maxCells         int
	batchConcurrency int

	metrics MetricsCollector
	logger  *Logger
}

// New creates a Grid.
func New(optFns ...Option) (*Grid, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	size := uint32(1) << o.precision
	return &Grid{
		precision:        o.precision,
		size:             size,
		laneMask:         morton.LaneMask(o.precision),
		codeMask:         morton.CodeMask(o.precision),
		latStep:          (LatitudeMax - LatitudeMin) / float64(size),
		lngStep:          (LongitudeMax - LongitudeMin) / float64(size),
		maxRings:         o.maxRings,
		maxCells:         o.maxCells,
		batchConcurrency: o.batchConcurrency,
		metrics:          o.metricsCollector,
		logger:           o.logger.WithPrecision(o.precision),
	}, nil
}

// MustNew is like New but panics on an invalid option.
func MustNew(optFns ...Option) *Grid {
	g, err := New(optFns...)
	if err != nil {
		panic(err)
	}
	return g
}

// Precision returns the number of bits per axis.
func (g *Grid) Precision() uint { return g.precision }

// LatStep returns the cell height in degrees.
func (g *Grid) LatStep() float64 { return g.latStep }

// LngStep returns the cell width in degrees.
func (g *Grid) LngStep() float64 { return g.lngStep }

// Size returns the number of buckets per axis (2^Precision).
func (g *Grid) Size() uint32 { return g.size }

var defaultGrid = MustNew()

// Default returns the shared grid used by the package-level functions.
func Default() *Grid { return defaultGrid }

// Create encodes (lat, lng) on the default grid.
func Create(lat, lng float64) (Code, error) { return defaultGrid.Create(lat, lng) }

// Parse returns the centre of the cell on the default grid.
func Parse(code Code) Coordinate { return defaultGrid.Parse(code) }

// Contains reports whether (lat, lng) lies in the cell on the default grid.
func Contains(code Code, lat, lng float64) bool { return defaultGrid.Contains(code, lat, lng) }

// NorthOf returns the cell north of code on the default grid.
func NorthOf(code Code) (Code, error) { return defaultGrid.NorthOf(code) }

// SouthOf returns the cell south of code on the default grid.
func SouthOf(code Code) (Code, error) { return defaultGrid.SouthOf(code) }

// EastOf returns the cell east of code on the default grid.
func EastOf(code Code) Code { return defaultGrid.EastOf(code) }

// WestOf returns the cell west of code on the default grid.
func WestOf(code Code) Code { return defaultGrid.WestOf(code) }

// Nearby enumerates the cells within radius degrees of arc on the default grid.
func Nearby(code Code, radius float64) (*cellset.Set, error) { return defaultGrid.Nearby(code, radius) }

// HaversineDistance returns the great-circle distance in kilometres.
func HaversineDistance(a, b Coordinate) float64 { return distance.Haversine(a, b) }
