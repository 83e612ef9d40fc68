package analyzer

import (
	"context"
	"strings"

	"github.com/orionhq/crisis-intel/internal/models"
)

// Keyword is an offline analyzer applying the same extraction rules the
// prompt gives the model. Deterministic, so tests and keyless deployments
// get stable analyses.
type Keyword struct {
	locations []string
}

func NewKeyword() *Keyword {
	return &Keyword{
		// Known phrases of the operating region, scanned in order.
		locations: []string{
			"temple road",
			"beach road",
			"alappuzha",
			"alleppey",
			"kuttanad",
			"cherthala",
			"ambalappuzha",
		},
	}
}

var needKeywords = []struct {
	need     models.NeedType
	keywords []string
}{
	{models.NeedMedical, []string{"medical", "doctor", "injured", "injury", "bleeding", "unconscious", "chest pain", "fever", "medicine", "sick"}},
	{models.NeedRescue, []string{"trapped", "stranded", "rescue", "evacuate", "evacuation", "drowning"}},
	{models.NeedWater, []string{"drinking water", "thirsty", "clean water", "water"}},
	{models.NeedFood, []string{"food", "hungry", "starving", "meals", "nutrition"}},
	{models.NeedShelter, []string{"shelter", "homeless", "housing", "accommodation"}},
}

var urgencySignals = []struct {
	points   int
	group    string // vulnerable group, if any
	medical  string // medical concern, if any
	environ  string // environmental factor, if any
	keywords []string
}{
	{points: 25, group: "baby", keywords: []string{"baby", "infant", "newborn"}},
	{points: 20, group: "elderly", keywords: []string{"elderly", "old person", "aged"}},
	{points: 20, group: "pregnant", keywords: []string{"pregnant", "expecting mother"}},
	{points: 15, group: "disabled", keywords: []string{"disabled", "handicapped"}},
	{points: 30, medical: "emergency", keywords: []string{"chest pain", "bleeding", "unconscious"}},
	{points: 20, medical: "illness", keywords: []string{"sick", "fever", "ill"}},
	{points: 25, environ: "flood", keywords: []string{"flood", "water rising", "water is rising"}},
	{points: 30, environ: "fire", keywords: []string{"fire", "burning"}},
	{points: 20, keywords: []string{"trapped", "stranded"}},
}

func (k *Keyword) Analyze(ctx context.Context, message string) (models.DistressAnalysis, error) {
	lower := strings.ToLower(message)

	a := models.DistressAnalysis{
		Need:         detectNeed(lower),
		Quantity:     detectQuantity(lower),
		Location:     k.detectLocation(lower),
		UrgencyScore: 30,
		ExtractedDetails: models.ExtractedDetails{
			Duration: "Not specified",
		},
	}

	for _, sig := range urgencySignals {
		if !containsAny(lower, sig.keywords) {
			continue
		}
		a.UrgencyScore += sig.points
		switch {
		case sig.group != "":
			a.ExtractedDetails.VulnerableGroups = append(a.ExtractedDetails.VulnerableGroups, sig.group)
		case sig.medical != "":
			a.ExtractedDetails.MedicalConcerns = append(a.ExtractedDetails.MedicalConcerns, sig.medical)
		case sig.environ != "":
			a.ExtractedDetails.EnvironmentalFactors = append(a.ExtractedDetails.EnvironmentalFactors, sig.environ)
		}
		a.Reasoning = append(a.Reasoning, "matched signal: "+sig.keywords[0])
	}

	a.Normalize()
	a.UrgencyLevel = urgencyLevel(a.UrgencyScore)

	return a, nil
}

func detectNeed(lower string) models.NeedType {
	for _, entry := range needKeywords {
		if containsAny(lower, entry.keywords) {
			return entry.need
		}
	}
	return models.NeedOther
}

func (k *Keyword) detectLocation(lower string) string {
	for _, phrase := range k.locations {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return "Location not specified"
}

func detectQuantity(lower string) int {
	if strings.Contains(lower, "family") {
		return 4
	}
	return 1
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
