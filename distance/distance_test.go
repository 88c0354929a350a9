package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/geoquad/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(lat, lng float64) model.Coordinate {
	return model.Coordinate{Lat: lat, Lng: lng}
}

func TestHaversine_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      model.Coordinate
		wantKm    float64
		tolerance float64
	}{
		{"SamePoint", pt(25.033, 121.565), pt(25.033, 121.565), 0, 1e-9},
		{"NewYorkToLosAngeles", pt(40.7128, -74.0060), pt(34.0522, -118.2437), 3936, 10},
		{"LondonToParis", pt(51.5074, -0.1278), pt(48.8566, 2.3522), 343.5, 2},
		{"OneDegreeOnEquator", pt(0, 0), pt(0, 1), 111.195, 0.01},
		{"Antipodal", pt(0, 0), pt(0, 180), math.Pi * EarthRadiusKm, 1e-6},
		{"PoleToPole", pt(90, 0), pt(-90, 0), math.Pi * EarthRadiusKm, 1e-6},
		{"AcrossAntimeridian", pt(0, 179.5), pt(0, -179.5), 111.195, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.a, tt.b)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestHaversine_Identity(t *testing.T) {
	for _, p := range []model.Coordinate{pt(0, 0), pt(90, 0), pt(-90, 180), pt(10, 20), pt(-33.9, 151.2)} {
		assert.Equal(t, 0.0, Haversine(p, p), "point %v", p)
	}
}

func TestHaversine_Symmetry(t *testing.T) {
	pairs := [][2]model.Coordinate{
		{pt(25, 121), pt(26, 122)},
		{pt(-1, -1), pt(1, 1)},
		{pt(89.9, -170), pt(-45, 60)},
	}
	for _, p := range pairs {
		assert.InDelta(t, Haversine(p[0], p[1]), Haversine(p[1], p[0]), 1e-12)
	}
}

func TestHaversine_Monotonic(t *testing.T) {
	a := pt(-1, -1)
	b := pt(1, 1)
	base := Haversine(a, b)

	moves := []struct {
		name   string
		mutate func(a, b *model.Coordinate, f float64)
	}{
		{"ALat", func(a, _ *model.Coordinate, f float64) { a.Lat *= f }},
		{"ALng", func(a, _ *model.Coordinate, f float64) { a.Lng *= f }},
		{"BLat", func(_, b *model.Coordinate, f float64) { b.Lat *= f }},
		{"BLng", func(_, b *model.Coordinate, f float64) { b.Lng *= f }},
	}

	for _, m := range moves {
		t.Run(m.name, func(t *testing.T) {
			fa, fb := a, b
			m.mutate(&fa, &fb, 2)
			assert.Greater(t, Haversine(fa, fb), base, "doubling moves the points apart")

			ha, hb := a, b
			m.mutate(&ha, &hb, 0.5)
			assert.Less(t, Haversine(ha, hb), base, "halving moves the points together")
		})
	}
}

func TestCentralAngle(t *testing.T) {
	assert.InDelta(t, 1.0, CentralAngle(pt(0, 0), pt(0, 1)), 1e-9)
	assert.InDelta(t, 1.0, CentralAngle(pt(0, 0), pt(1, 0)), 1e-9)
	assert.InDelta(t, 180.0, CentralAngle(pt(0, 0), pt(0, 180)), 1e-9)
	// Along a parallel at 60 degrees, one degree of longitude is about half a degree of arc.
	assert.InDelta(t, 0.5, CentralAngle(pt(60, 0), pt(60, 1)), 0.001)
}

func TestEquirectangular(t *testing.T) {
	a := pt(47.0, 8.0)
	b := pt(47.5, 8.7)
	h := Haversine(a, b)
	e := Equirectangular(a, b)
	assert.InDelta(t, h, e, h*0.001)

	// Wraps across the antimeridian instead of going the long way round.
	assert.InDelta(t, 111.195, Equirectangular(pt(0, 179.5), pt(0, -179.5)), 0.01)
}

func TestUnitConversion(t *testing.T) {
	assert.InDelta(t, 111.195, DegreesToKilometers(1), 0.001)
	assert.InDelta(t, 1.0, KilometersToDegrees(DegreesToKilometers(1)), 1e-12)
	assert.InDelta(t, Haversine(pt(3, 4), pt(5, 6)), DegreesToKilometers(CentralAngle(pt(3, 4), pt(5, 6))), 1e-9)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "Haversine", MetricHaversine.String())
	assert.Equal(t, "CentralAngle", MetricCentralAngle.String())
	assert.Equal(t, "Equirectangular", MetricEquirectangular.String())
	assert.Equal(t, "Unknown(42)", Metric(42).String())
}

func TestProvider(t *testing.T) {
	a, b := pt(10, 20), pt(11, 21)

	fn, err := Provider(MetricHaversine)
	require.NoError(t, err)
	assert.Equal(t, Haversine(a, b), fn(a, b))

	fn, err = Provider(MetricCentralAngle)
	require.NoError(t, err)
	assert.Equal(t, CentralAngle(a, b), fn(a, b))

	fn, err = Provider(MetricEquirectangular)
	require.NoError(t, err)
	assert.Equal(t, Equirectangular(a, b), fn(a, b))

	_, err = Provider(Metric(99))
	assert.Error(t, err)
}

func BenchmarkHaversine(b *testing.B) {
	p, q := pt(40.7128, -74.0060), pt(34.0522, -118.2437)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Haversine(p, q)
	}
	_ = sink
}
