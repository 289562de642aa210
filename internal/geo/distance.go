// Package geo provides great-circle distance math for fleet queries.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the Haversine great-circle distance between two points
// in kilometers. Inputs are orb.Points in lon/lat decimal degrees; any two
// finite points yield a defined, non-negative result.
func DistanceKm(a, b orb.Point) float64 {
	latA := toRadians(a.Lat())
	latB := toRadians(b.Lat())
	dLat := toRadians(b.Lat() - a.Lat())
	dLon := toRadians(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
