package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"Origin", Coordinate{0, 0}, true},
		{"NorthEastCorner", Coordinate{90, 180}, true},
		{"SouthWestCorner", Coordinate{-90, -180}, true},
		{"LatTooHigh", Coordinate{90.0001, 0}, false},
		{"LatTooLow", Coordinate{-90.0001, 0}, false},
		{"LngTooHigh", Coordinate{0, 180.5}, false},
		{"LngTooLow", Coordinate{0, -181}, false},
		{"NaN", Coordinate{math.NaN(), 0}, false},
		{"Inf", Coordinate{0, math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Valid())
		})
	}
}

func TestCodeText(t *testing.T) {
	c := Code(0x00c0ffee)
	assert.Equal(t, "00c0ffee", c.String())

	text, err := c.MarshalText()
	require.NoError(t, err)

	var got Code
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, c, got)

	assert.Error(t, got.UnmarshalText([]byte("abc")))
	assert.Error(t, got.UnmarshalText([]byte("zzzzzzzz")))
}

func TestCodeJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Code{"cell": 0xdeadbeef})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cell":"deadbeef"}`, string(data))
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinLat: 10, MinLng: 20, MaxLat: 11, MaxLng: 22}

	assert.True(t, b.Contains(Coordinate{10, 20}))
	assert.True(t, b.Contains(Coordinate{10.5, 21.9}))
	assert.False(t, b.Contains(Coordinate{11, 21}), "upper latitude edge is open")
	assert.False(t, b.Contains(Coordinate{10.5, 22}), "upper longitude edge is open")
	assert.False(t, b.Contains(Coordinate{math.NaN(), 21}))

	assert.InDelta(t, 1.0, b.Height(), 1e-12)
	assert.InDelta(t, 2.0, b.Width(), 1e-12)
	assert.Equal(t, Coordinate{10.5, 21}, b.Center())
}

func TestBoundsContainsEdges(t *testing.T) {
	top := Bounds{MinLat: 89, MinLng: -180, MaxLat: 90, MaxLng: -179}
	assert.True(t, top.Contains(Coordinate{90, -180}), "north pole belongs to the top row")
	assert.True(t, top.Contains(Coordinate{89.5, 180}), "+180 is read as -180")
}
