package geo

import (
	"strings"

	"github.com/orionhq/crisis-intel/internal/models"
)

// Resolver maps a free-text location phrase to coordinates.
type Resolver interface {
	Resolve(location string) models.Coordinates
}

// Entry is one phrase-to-coordinate mapping. Entries are scanned in
// declared order; the first phrase contained in the input wins, so order
// is part of the resolver's contract.
type Entry struct {
	Phrase      string
	Coordinates models.Coordinates
}

type Gazetteer struct {
	entries      []Entry
	defaultCoord models.Coordinates
}

func NewGazetteer(entries []Entry, defaultCoord models.Coordinates) *Gazetteer {
	return &Gazetteer{
		entries:      entries,
		defaultCoord: defaultCoord,
	}
}

// Resolve does a case-insensitive substring scan over the entries and
// returns the default coordinate when nothing matches.
func (g *Gazetteer) Resolve(location string) models.Coordinates {
	normalized := strings.ToLower(location)
	for _, e := range g.entries {
		if strings.Contains(normalized, e.Phrase) {
			return e.Coordinates
		}
	}
	return g.defaultCoord
}

// Alappuzha returns the gazetteer for the Alappuzha district micro-region.
// The default entry is the Alappuzha town center.
func Alappuzha() *Gazetteer {
	return NewGazetteer(
		[]Entry{
			{Phrase: "temple road", Coordinates: models.Coordinates{Latitude: 9.4950, Longitude: 76.3320}},
			{Phrase: "alappuzha", Coordinates: models.Coordinates{Latitude: 9.4981, Longitude: 76.3388}},
			{Phrase: "alleppey", Coordinates: models.Coordinates{Latitude: 9.4981, Longitude: 76.3388}},
			{Phrase: "kuttanad", Coordinates: models.Coordinates{Latitude: 9.4500, Longitude: 76.4000}},
			{Phrase: "cherthala", Coordinates: models.Coordinates{Latitude: 9.6845, Longitude: 76.3362}},
			{Phrase: "ambalappuzha", Coordinates: models.Coordinates{Latitude: 9.3700, Longitude: 76.3600}},
			{Phrase: "beach road", Coordinates: models.Coordinates{Latitude: 9.5010, Longitude: 76.3400}},
		},
		models.Coordinates{Latitude: 9.4981, Longitude: 76.3388},
	)
}
