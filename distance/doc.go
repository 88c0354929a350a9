// Package distance provides great-circle distance calculations between
// coordinates.
//
// # Supported Metrics
//
//   - MetricHaversine: great-circle distance in kilometres (default)
//   - MetricCentralAngle: great-circle distance in degrees of arc
//   - MetricEquirectangular: flat-earth approximation in kilometres
//
// # Usage
//
//	km := distance.Haversine(a, b)
//	deg := distance.CentralAngle(a, b)
//	fn, _ := distance.Provider(distance.MetricEquirectangular)
package distance
