package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/orionhq/crisis-intel/internal/geo"
	"github.com/orionhq/crisis-intel/internal/models"
)

// Travel rate assumed when deriving the display ETA: 3 km per 10 minutes.
const (
	etaKmPerUnit   = 3.0
	etaMinsPerUnit = 10.0
)

// Source is the read surface the selector needs from the catalog.
type Source interface {
	List() []models.Resource
	ListByType(t models.ResourceType) []models.Resource
}

// Selector picks the best catalog entry for a distress analysis. It is
// stateless per call and never returns an error: degenerate inputs fall
// through to documented defaults, and an empty catalog yields the no-match
// sentinel.
type Selector struct {
	source   Source
	resolver geo.Resolver
}

func NewSelector(source Source, resolver geo.Resolver) *Selector {
	return &Selector{
		source:   source,
		resolver: resolver,
	}
}

// FindBestResource resolves the distress location, scores the candidates
// of the requested need type (or the whole catalog when that type has no
// entries), and projects the top-ranked candidate into a MatchResult.
func (s *Selector) FindBestResource(analysis models.DistressAnalysis) models.MatchResult {
	distress := s.resolver.Resolve(analysis.Location)

	candidates := s.source.ListByType(models.ResourceType(analysis.Need))
	if len(candidates) == 0 {
		// Cross-type fallback: a need with zero entries still gets a
		// recommendation from the full catalog.
		candidates = s.source.List()
	}
	if len(candidates) == 0 {
		return NoMatchResult()
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, r := range candidates {
		scored = append(scored, Score(distress, r, analysis.UrgencyScore))
	}

	// Stable sort keeps catalog insertion order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	return project(scored[0])
}

func project(best ScoredCandidate) models.MatchResult {
	// ETA derives from the one-decimal display distance, not the raw one.
	displayKm := math.Round(best.DistanceKm*10) / 10
	etaMins := int(math.Ceil(displayKm / etaKmPerUnit * etaMinsPerUnit))

	return models.MatchResult{
		ID:                  best.ID,
		Name:                best.Name,
		Type:                string(best.Type),
		Subtype:             best.Subtype,
		Location:            best.Location,
		Distance:            fmt.Sprintf("%.1f km", displayKm),
		ETA:                 fmt.Sprintf("%d mins", etaMins),
		AvailabilityStatus:  best.AvailabilityStatus,
		Capacity:            best.Capacity,
		CurrentAvailability: best.CurrentAvailability,
		Contact:             best.Contact,
		MatchScore:          int(math.Round(best.MatchScore)),
	}
}

// NoMatchResult is the designed degraded outcome for an empty catalog.
func NoMatchResult() models.MatchResult {
	return models.MatchResult{
		Name:               "No resources available",
		Type:               "unknown",
		Location:           "N/A",
		Distance:           "N/A",
		ETA:                "N/A",
		AvailabilityStatus: models.AvailabilityUnavailable,
		Contact:            "Emergency hotline: 112",
		Message:            "Please contact emergency services directly",
	}
}
