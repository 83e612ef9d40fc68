package geo

import (
	"testing"

	"github.com/orionhq/crisis-intel/internal/models"
)

func TestGazetteer_Resolve(t *testing.T) {
	g := Alappuzha()

	tests := []struct {
		name     string
		location string
		want     models.Coordinates
	}{
		{
			name:     "exact phrase",
			location: "kuttanad",
			want:     models.Coordinates{Latitude: 9.4500, Longitude: 76.4000},
		},
		{
			name:     "phrase embedded in sentence",
			location: "stranded near temple road since morning",
			want:     models.Coordinates{Latitude: 9.4950, Longitude: 76.3320},
		},
		{
			name:     "case insensitive",
			location: "CHERTHALA junction",
			want:     models.Coordinates{Latitude: 9.6845, Longitude: 76.3362},
		},
		{
			name:     "no match falls back to default",
			location: "somewhere unheard of",
			want:     models.Coordinates{Latitude: 9.4981, Longitude: 76.3388},
		},
		{
			name:     "empty string falls back to default",
			location: "",
			want:     models.Coordinates{Latitude: 9.4981, Longitude: 76.3388},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Resolve(tt.location); got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.location, got, tt.want)
			}
		})
	}
}

func TestGazetteer_DeclaredOrderWins(t *testing.T) {
	g := NewGazetteer(
		[]Entry{
			{Phrase: "road", Coordinates: models.Coordinates{Latitude: 1, Longitude: 1}},
			{Phrase: "beach road", Coordinates: models.Coordinates{Latitude: 2, Longitude: 2}},
		},
		models.Coordinates{},
	)

	// "beach road" contains both phrases; the first declared entry wins.
	got := g.Resolve("beach road")
	if got != (models.Coordinates{Latitude: 1, Longitude: 1}) {
		t.Errorf("expected first declared entry to win, got %+v", got)
	}
}
