package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 28.6139, Longitude: 77.2090},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 90, Longitude: 0},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := Point{Latitude: 28.6139, Longitude: 77.2090}
	b := Point{Latitude: 19.0760, Longitude: 72.8777}

	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name        string
		a, b        Point
		expectedKm  float64
		toleranceKm float64
	}{
		{
			name:        "one hundredth degree of latitude",
			a:           Point{Latitude: 28.6139, Longitude: 77.2090},
			b:           Point{Latitude: 28.6239, Longitude: 77.2090},
			expectedKm:  1.11,
			toleranceKm: 0.01,
		},
		{
			name:        "delhi to mumbai",
			a:           Point{Latitude: 28.6139, Longitude: 77.2090},
			b:           Point{Latitude: 19.0760, Longitude: 72.8777},
			expectedKm:  1148,
			toleranceKm: 5,
		},
		{
			name:        "quarter circumference along equator",
			a:           Point{Latitude: 0, Longitude: 0},
			b:           Point{Latitude: 0, Longitude: 90},
			expectedKm:  10007.5,
			toleranceKm: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedKm, DistanceKm(tt.a, tt.b), tt.toleranceKm)
		})
	}
}

func TestDistanceKm_NonNegative(t *testing.T) {
	a := Point{Latitude: 51.5074, Longitude: -0.1278}
	b := Point{Latitude: 48.8566, Longitude: 2.3522}

	assert.GreaterOrEqual(t, DistanceKm(a, b), 0.0)
	assert.GreaterOrEqual(t, DistanceKm(b, a), 0.0)
}
