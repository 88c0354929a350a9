package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/geoquad/model"
)

// EarthRadiusKm is the mean Earth radius (IUGG) in kilometres.
const EarthRadiusKm = 6371.0088

const degToRad = math.Pi / 180.0

// Haversine returns the great-circle distance in kilometres between a and b.
func Haversine(a, b model.Coordinate) float64 {
	return EarthRadiusKm * centralAngle(a, b)
}

// CentralAngle returns the great-circle distance between a and b in degrees
// of arc.
func CentralAngle(a, b model.Coordinate) float64 {
	return centralAngle(a, b) / degToRad
}

// centralAngle uses the half-angle form, which stays accurate for nearly
// identical points where the spherical law of cosines loses precision.
func centralAngle(a, b model.Coordinate) float64 {
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLng := math.Sin((b.Lng - a.Lng) * degToRad / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	h = math.Min(1, math.Max(0, h))

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Equirectangular approximates the distance in kilometres by projecting both
// points onto a plane at their mean latitude. Cheap, and within a fraction of
// a percent of Haversine for separations of a few degrees.
func Equirectangular(a, b model.Coordinate) float64 {
	dLng := b.Lng - a.Lng
	if dLng > 180 {
		dLng -= 360
	} else if dLng < -180 {
		dLng += 360
	}
	x := dLng * degToRad * math.Cos((a.Lat+b.Lat)/2*degToRad)
	y := (b.Lat - a.Lat) * degToRad
	return EarthRadiusKm * math.Hypot(x, y)
}

// KilometersToDegrees converts a surface distance into degrees of arc.
func KilometersToDegrees(km float64) float64 {
	return km / EarthRadiusKm / degToRad
}

// DegreesToKilometers converts degrees of arc into a surface distance.
func DegreesToKilometers(deg float64) float64 {
	return deg * degToRad * EarthRadiusKm
}

// Metric represents the distance metric used for coordinate comparison.
type Metric int

const (
	MetricHaversine Metric = iota
	MetricCentralAngle
	MetricEquirectangular
)

func (m Metric) String() string {
	switch m {
	case MetricHaversine:
		return "Haversine"
	case MetricCentralAngle:
		return "CentralAngle"
	case MetricEquirectangular:
		return "Equirectangular"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b model.Coordinate) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricHaversine:
		return Haversine, nil
	case MetricCentralAngle:
		return CentralAngle, nil
	case MetricEquirectangular:
		return Equirectangular, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
