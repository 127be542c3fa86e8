package special

import (
	"math"

	"github.com/born-ml/mega/internal/numerr"
)

// Haversine evaluates hav(θ) = (1 - cos θ) / 2.
type Haversine struct {
	theta float64
}

// NewHaversine creates hav(theta) for an angle in radians.
func NewHaversine(theta float64) *Haversine {
	return &Haversine{theta: theta}
}

// Theta returns the angle in radians.
func (h *Haversine) Theta() float64 { return h.theta }

// Compute returns (1 - cos θ) / 2. The function is even in θ.
func (h *Haversine) Compute() float64 {
	return (1 - math.Cos(h.theta)) / 2
}

// EarthRadiusKm is the mean Earth radius used by GreatCircleDistance callers.
const EarthRadiusKm = 6371.0

// GreatCircleDistance returns the distance between two points on a sphere of
// the given radius. Latitudes and longitudes are in degrees.
func GreatCircleDistance(lat1, lon1, lat2, lon2, radius float64) (float64, error) {
	if radius < 0 || math.IsNaN(radius) {
		return 0, numerr.Invalid("great circle: radius must be >= 0, got %v", radius)
	}
	for _, v := range []float64{lat1, lon1, lat2, lon2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, numerr.Invalid("great circle: coordinate must be finite, got %v", v)
		}
	}

	phi1, phi2 := radians(lat1), radians(lat2)
	a := NewHaversine(phi2-phi1).Compute() +
		math.Cos(phi1)*math.Cos(phi2)*NewHaversine(radians(lon2-lon1)).Compute()
	a = math.Min(math.Max(a, 0), 1)
	return radius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
