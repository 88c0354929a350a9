package geoquad

import (
	"math"

	"github.com/hupe1980/geoquad/internal/morton"
	"github.com/hupe1980/geoquad/model"
)

// Create encodes (lat, lng) into the code of the cell containing it.
//
// Latitude +90 falls into the top row; longitude +180 is the same meridian
// as -180 and falls into the first column. Coordinates outside the valid
// range, NaN or infinite fail with a *DomainError.
func (g *Grid) Create(lat, lng float64) (Code, error) {
	code, err := g.create(lat, lng)
	g.metrics.RecordCreate(err)
	return code, err
}

// CreateFromCoordinate is Create for a Coordinate value.
func (g *Grid) CreateFromCoordinate(c Coordinate) (Code, error) {
	return g.Create(c.Lat, c.Lng)
}

func (g *Grid) create(lat, lng float64) (Code, error) {
	if !model.ValidLatitude(lat) {
		return 0, &DomainError{Axis: "latitude", Value: lat}
	}
	if !model.ValidLongitude(lng) {
		return 0, &DomainError{Axis: "longitude", Value: lng}
	}
	return g.encode(g.latIndex(lat), g.lngIndex(lng)), nil
}

// Parse returns the centre of the cell. Bits above the grid's 2*Precision
// code width are ignored.
func (g *Grid) Parse(code Code) Coordinate {
	latIdx, lngIdx := g.decode(code)
	return Coordinate{
		Lat: LatitudeMin + (float64(latIdx)+0.5)*g.latStep,
		Lng: LongitudeMin + (float64(lngIdx)+0.5)*g.lngStep,
	}
}

// Center is an alias for Parse.
func (g *Grid) Center(code Code) Coordinate { return g.Parse(code) }

// Bounds returns the rectangle covered by the cell.
func (g *Grid) Bounds(code Code) Bounds {
	latIdx, lngIdx := g.decode(code)
	minLat := LatitudeMin + float64(latIdx)*g.latStep
	minLng := LongitudeMin + float64(lngIdx)*g.lngStep
	return Bounds{
		MinLat: minLat,
		MinLng: minLng,
		MaxLat: minLat + g.latStep,
		MaxLng: minLng + g.lngStep,
	}
}

// Contains reports whether (lat, lng) lies inside the cell, i.e. whether
// Create(lat, lng) would return code.
//
// This is the half-open bounds test evaluated in bucket space, so points on
// a cell edge agree with Create.
func (g *Grid) Contains(code Code, lat, lng float64) bool {
	if !model.ValidLatitude(lat) || !model.ValidLongitude(lng) {
		return false
	}
	latIdx, lngIdx := g.decode(code)
	return g.latIndex(lat) == latIdx && g.lngIndex(lng) == lngIdx
}

// Valid reports whether code only uses the low 2*Precision bits.
func (g *Grid) Valid(code Code) bool {
	return uint32(code)&^g.codeMask == 0
}

func (g *Grid) encode(latIdx, lngIdx uint16) Code {
	return Code(morton.Interleave(lngIdx, latIdx))
}

func (g *Grid) decode(code Code) (latIdx, lngIdx uint16) {
	lngIdx, latIdx = morton.Deinterleave(uint32(code) & g.codeMask)
	return latIdx, lngIdx
}

func (g *Grid) latIndex(lat float64) uint16 {
	i := math.Floor((lat - LatitudeMin) / g.latStep)
	if i < 0 {
		return 0
	}
	if i >= float64(g.size) {
		return uint16(g.size - 1)
	}
	return uint16(i)
}

func (g *Grid) lngIndex(lng float64) uint16 {
	i := math.Floor((lng - LongitudeMin) / g.lngStep)
	if i < 0 {
		return 0
	}
	return uint16(uint32(i) & g.laneMask)
}
