package model

import (
	"encoding/hex"
	"fmt"
	"math"
)

// Coordinate bounds in decimal degrees.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// Coordinate is a point on the lat/lng grid in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both axes are finite and inside their ranges.
func (c Coordinate) Valid() bool {
	return ValidLatitude(c.Lat) && ValidLongitude(c.Lng)
}

// String returns a string representation of the Coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Lat, c.Lng)
}

// ValidLatitude reports whether lat is finite and in [-90, 90].
func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= LatitudeMin && lat <= LatitudeMax
}

// ValidLongitude reports whether lng is finite and in [-180, 180].
func ValidLongitude(lng float64) bool {
	return !math.IsNaN(lng) && lng >= LongitudeMin && lng <= LongitudeMax
}

// Code identifies one grid cell. Longitude bucket bits sit in the even bit
// positions, latitude bucket bits in the odd ones.
type Code uint32

// String renders the code as 8 hex digits.
func (c Code) String() string {
	return fmt.Sprintf("%08x", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	if len(text) != 8 {
		return fmt.Errorf("invalid code %q: want 8 hex digits", text)
	}
	var buf [4]byte
	if _, err := hex.Decode(buf[:], text); err != nil {
		return fmt.Errorf("invalid code %q: %w", text, err)
	}
	*c = Code(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]))
	return nil
}

// Bounds is the rectangle covered by a cell: [MinLat, MaxLat) x [MinLng, MaxLng).
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether c lies inside the half-open rectangle.
//
// The row touching the north pole is closed at +90 so the pole itself has a
// cell, and longitude +180 is read as -180.
func (b Bounds) Contains(c Coordinate) bool {
	if !c.Valid() {
		return false
	}
	lng := c.Lng
	if lng == LongitudeMax {
		lng = LongitudeMin
	}
	latOK := c.Lat >= b.MinLat && (c.Lat < b.MaxLat || (b.MaxLat >= LatitudeMax && c.Lat == LatitudeMax))
	return latOK && lng >= b.MinLng && lng < b.MaxLng
}

// Height returns the latitude extent in degrees.
func (b Bounds) Height() float64 { return b.MaxLat - b.MinLat }

// Width returns the longitude extent in degrees.
func (b Bounds) Width() float64 { return b.MaxLng - b.MinLng }

// Center returns the midpoint of the rectangle.
func (b Bounds) Center() Coordinate {
	return Coordinate{
		Lat: b.MinLat + b.Height()/2,
		Lng: b.MinLng + b.Width()/2,
	}
}

// String returns a string representation of the Bounds.
func (b Bounds) String() string {
	return fmt.Sprintf("[%.6f, %.6f) x [%.6f, %.6f)", b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
}
