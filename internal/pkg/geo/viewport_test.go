package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourguide-client/internal/domain"
)

func TestComputeViewport_Empty(t *testing.T) {
	vp := ComputeViewport(nil)

	assert.Equal(t, DefaultViewport(), vp)
	assert.Equal(t, 40.7128, vp.Center.Lat)
	assert.Equal(t, -74.0060, vp.Center.Lng)
	assert.Equal(t, 0.05, vp.LatSpan)
	assert.Equal(t, 0.05, vp.LngSpan)
}

func TestComputeViewport_SinglePoint(t *testing.T) {
	p := domain.Location{Lat: 41.3851, Lng: 2.1734}

	vp := ComputeViewport([]domain.Location{p})

	assert.Equal(t, p, vp.Center)
	assert.GreaterOrEqual(t, vp.LatSpan, MinSpan)
	assert.GreaterOrEqual(t, vp.LngSpan, MinSpan)
	assert.True(t, vp.Contains(p))
}

func TestComputeViewport_TwoPoints(t *testing.T) {
	// Tour T1: POIs at (40.0,-74.0) and (40.1,-73.9).
	points := []domain.Location{
		{Lat: 40.0, Lng: -74.0},
		{Lat: 40.1, Lng: -73.9},
	}

	vp := ComputeViewport(points)

	assert.InDelta(t, 40.05, vp.Center.Lat, 1e-9)
	assert.InDelta(t, -73.95, vp.Center.Lng, 1e-9)
	assert.InDelta(t, 0.15, vp.LatSpan, 1e-9)
	assert.InDelta(t, 0.15, vp.LngSpan, 1e-9)
}

func TestComputeViewport_DegenerateAxis(t *testing.T) {
	// All points share the same longitude: the zero span is replaced,
	// the non-zero one keeps the padded value.
	points := []domain.Location{
		{Lat: 40.0, Lng: -74.0},
		{Lat: 40.2, Lng: -74.0},
	}

	vp := ComputeViewport(points)

	assert.InDelta(t, 0.3, vp.LatSpan, 1e-9)
	assert.Equal(t, MinSpan, vp.LngSpan)
}

func TestComputeViewport_OrderInvariant(t *testing.T) {
	points := []domain.Location{
		{Lat: 40.7128, Lng: -74.0060},
		{Lat: 40.7250, Lng: -74.0150},
		{Lat: 40.7300, Lng: -74.0200},
		{Lat: 40.7200, Lng: -74.0100},
	}

	expected := ComputeViewport(points)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.Location, len(points))
		copy(shuffled, points)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, expected, ComputeViewport(shuffled))
	}
}

func TestComputeViewport_ContainsAllPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		n := 1 + rng.Intn(10)
		points := make([]domain.Location, n)
		for j := range points {
			points[j] = domain.Location{
				Lat: -90 + rng.Float64()*180,
				Lng: -180 + rng.Float64()*360,
			}
		}

		vp := ComputeViewport(points)
		require.Greater(t, vp.LatSpan, 0.0)
		require.Greater(t, vp.LngSpan, 0.0)

		for _, p := range points {
			assert.True(t, vp.Contains(p),
				"point %+v outside viewport %+v", p, vp)
		}
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		expected bool
	}{
		{"valid", 41.3851, 2.1734, true},
		{"lat too high", 90.1, 0, false},
		{"lat too low", -90.1, 0, false},
		{"lng too high", 0, 180.1, false},
		{"lng too low", 0, -180.1, false},
		{"boundary values", 90, -180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateCoordinates(tt.lat, tt.lng))
		})
	}
}
