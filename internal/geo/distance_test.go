package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func point(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	points := []orb.Point{
		point(0, 0),
		point(18.5204, 73.8567),
		point(-33.8688, 151.2093),
		point(90, 0),
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := point(18.5204, 73.8567)
	b := point(19.0760, 72.8777)

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestDistanceKm_TriangleInequality(t *testing.T) {
	a := point(18.5204, 73.8567)
	b := point(28.6139, 77.2090)
	c := point(12.9716, 77.5946)

	ac := DistanceKm(a, c)
	detour := DistanceKm(a, b) + DistanceKm(b, c)

	assert.LessOrEqual(t, ac, detour+1e-6)
}

func TestDistanceKm_PuneNeighborhood(t *testing.T) {
	origin := point(18.5204, 73.8567)
	vehicle := point(18.5300, 73.8600)

	got := DistanceKm(origin, vehicle)
	assert.InDelta(t, 1.12, got, 0.05)
}

func TestDistanceKm_FarVehicle(t *testing.T) {
	origin := point(18.5204, 73.8567)
	vehicle := point(19.0000, 74.0000)

	got := DistanceKm(origin, vehicle)
	assert.Greater(t, got, 50.0)
	assert.Less(t, got, 60.0)
}

func TestDistanceKm_Antipodal(t *testing.T) {
	a := point(0, 0)
	b := point(0, 180)

	assert.InDelta(t, 20015.0, DistanceKm(a, b), 1.0)
}

func TestDistanceKm_NonNegative(t *testing.T) {
	pairs := [][2]orb.Point{
		{point(0, 0), point(0, 0.0000001)},
		{point(-90, 0), point(90, 0)},
		{point(45, -180), point(45, 180)},
	}

	for _, pair := range pairs {
		assert.GreaterOrEqual(t, DistanceKm(pair[0], pair[1]), 0.0)
	}
}
