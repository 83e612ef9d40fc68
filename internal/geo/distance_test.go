package geo

import (
	"math"
	"testing"

	"github.com/orionhq/crisis-intel/internal/models"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	p := models.Coordinates{Latitude: 9.4981, Longitude: 76.3388}
	if d := Distance(p, p); d != 0 {
		t.Errorf("expected 0 for identical points, got %f", d)
	}
}

func TestDistance_KnownPair(t *testing.T) {
	// Alappuzha town center to Cherthala Junction, roughly 20.7 km.
	a := models.Coordinates{Latitude: 9.4981, Longitude: 76.3388}
	b := models.Coordinates{Latitude: 9.6845, Longitude: 76.3362}

	d := Distance(a, b)
	if d < 20.0 || d > 21.5 {
		t.Errorf("expected ~20.7 km, got %f", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := models.Coordinates{Latitude: 9.4981, Longitude: 76.3388}
	b := models.Coordinates{Latitude: 9.9312, Longitude: 76.2673}

	if d1, d2 := Distance(a, b), Distance(b, a); math.Abs(d1-d2) > 1e-12 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistance_Deterministic(t *testing.T) {
	a := models.Coordinates{Latitude: 9.4981, Longitude: 76.3388}
	b := models.Coordinates{Latitude: 9.4500, Longitude: 76.4000}

	first := Distance(a, b)
	for i := 0; i < 10; i++ {
		if d := Distance(a, b); d != first {
			t.Fatalf("distance not deterministic: %v vs %v", d, first)
		}
	}
}
