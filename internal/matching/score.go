package matching

import (
	"math"

	"github.com/orionhq/crisis-intel/internal/geo"
	"github.com/orionhq/crisis-intel/internal/models"
)

const (
	maxDistanceCredit    = 100.0
	distancePenaltyPerKm = 5.0
	availableBonus       = 50.0
	limitedBonus         = 20.0
	capacityWeight       = 30.0
	urgencyBoost         = 40.0
	urgencyThreshold     = 75
)

// ScoredCandidate is a catalog entry annotated with the computed distance
// and score for one matching call. Never persisted.
type ScoredCandidate struct {
	models.Resource
	DistanceKm float64
	MatchScore float64
}

// Score computes the match score for one candidate. It is a pure function
// of the distress coordinates, the candidate record and the urgency score,
// summing four independent terms:
//
//   - distance credit, saturating to 0 at 20 km and never going negative
//   - availability-status bonus, read verbatim from the catalog
//   - capacity-utilization share; a zero-capacity record contributes 0
//   - category boost for medical/rescue when urgency is 75 or higher
//
// The result ranks candidates within one call; it has no absolute meaning.
func Score(distress models.Coordinates, r models.Resource, urgencyScore int) ScoredCandidate {
	distanceKm := geo.Distance(distress, r.Coordinates)

	score := math.Max(0, maxDistanceCredit-distanceKm*distancePenaltyPerKm)

	switch r.AvailabilityStatus {
	case models.AvailabilityAvailable:
		score += availableBonus
	case models.AvailabilityLimited:
		score += limitedBonus
	}

	if r.Capacity > 0 {
		score += float64(r.CurrentAvailability) / float64(r.Capacity) * capacityWeight
	}

	if urgencyScore >= urgencyThreshold {
		if r.Type == models.ResourceTypeMedical || r.Type == models.ResourceTypeRescue {
			score += urgencyBoost
		}
	}

	return ScoredCandidate{
		Resource:   r,
		DistanceKm: distanceKm,
		MatchScore: score,
	}
}
