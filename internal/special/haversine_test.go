package special

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mega/internal/numerr"
)

func TestHaversineKnownValues(t *testing.T) {
	tests := []struct {
		theta, want float64
	}{
		{0, 0},
		{math.Pi / 2, 0.5},
		{math.Pi, 1},
		{3 * math.Pi / 2, 0.5},
		{2 * math.Pi, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NewHaversine(tt.theta).Compute(), 1e-12, "hav(%v)", tt.theta)
	}
}

func TestHaversineSmallAngle(t *testing.T) {
	theta := 0.001
	want := (1 - math.Cos(theta)) / 2
	assert.InDelta(t, want, NewHaversine(theta).Compute(), 1e-15)
}

func TestHaversineIsEven(t *testing.T) {
	for theta := -10.0; theta <= 10; theta += 0.173 {
		assert.InDelta(t, NewHaversine(theta).Compute(), NewHaversine(-theta).Compute(), 1e-12, "θ = %v", theta)
	}
}

func TestGreatCircleDistance(t *testing.T) {
	d, err := GreatCircleDistance(40.7128, -74.0060, 40.7128, -74.0060, EarthRadiusKm)
	require.NoError(t, err)
	assert.Less(t, d, 1e-9)

	// Quarter of the equator.
	d, err = GreatCircleDistance(0, 0, 0, 90, EarthRadiusKm)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2*EarthRadiusKm, d, 1e-6)

	// Pole to pole.
	d, err = GreatCircleDistance(90, 0, -90, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, d, 1e-9)
}

func TestGreatCircleDistanceInvalid(t *testing.T) {
	_, err := GreatCircleDistance(0, 0, 1, 1, -1)
	assert.ErrorIs(t, err, numerr.ErrInvalidArgument)
	_, err = GreatCircleDistance(math.NaN(), 0, 1, 1, 1)
	assert.ErrorIs(t, err, numerr.ErrInvalidArgument)
}
