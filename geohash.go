package geoquad

import (
	"fmt"

	"github.com/mmcloughlin/geohash"
)

// MaxGeohashChars is the longest geohash Geohash produces.
const MaxGeohashChars = 12

// Geohash returns the base32 geohash of the cell centre, chars characters
// long (1..12). chars outside that range is clamped.
func (g *Grid) Geohash(code Code, chars uint) string {
	chars = min(max(chars, 1), MaxGeohashChars)
	c := g.Parse(code)
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, chars)
}

// CreateFromGeohash encodes the centre of a geohash cell.
func (g *Grid) CreateFromGeohash(hash string) (Code, error) {
	if err := geohash.Validate(hash); err != nil {
		return 0, fmt.Errorf("geohash %q: %w", hash, err)
	}
	lat, lng := geohash.DecodeCenter(hash)
	return g.Create(lat, lng)
}
