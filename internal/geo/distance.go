package geo

import (
	"math"

	"github.com/orionhq/crisis-intel/internal/models"
)

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// points, computed with the haversine formula. Pure; identical points
// yield 0.
func Distance(a, b models.Coordinates) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
