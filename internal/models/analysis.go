package models

type NeedType string

const (
	NeedFood    NeedType = "food"
	NeedWater   NeedType = "water"
	NeedMedical NeedType = "medical"
	NeedRescue  NeedType = "rescue"
	NeedShelter NeedType = "shelter"
	NeedOther   NeedType = "other"
)

const defaultUrgencyScore = 50

// DistressAnalysis is the structured output of the extraction step. The
// matching core consumes need, location and urgencyScore; everything else
// is passed through to the response untouched.
type DistressAnalysis struct {
	Need             NeedType         `json:"need"`
	Quantity         int              `json:"quantity"`
	Location         string           `json:"location"`
	UrgencyLevel     string           `json:"urgencyLevel"`
	UrgencyScore     int              `json:"urgencyScore"`
	Reasoning        []string         `json:"reasoning,omitempty"`
	ExtractedDetails ExtractedDetails `json:"extractedDetails"`
}

type ExtractedDetails struct {
	Duration             string   `json:"duration"`
	VulnerableGroups     []string `json:"vulnerableGroups"`
	MedicalConcerns      []string `json:"medicalConcerns"`
	EnvironmentalFactors []string `json:"environmentalFactors"`
}

// ParseNeed maps a raw need string onto the known need types, falling back
// to NeedOther for anything unrecognized.
func ParseNeed(s string) NeedType {
	switch NeedType(s) {
	case NeedFood, NeedWater, NeedMedical, NeedRescue, NeedShelter, NeedOther:
		return NeedType(s)
	default:
		return NeedOther
	}
}

// Normalize absorbs missing or out-of-range fields into their documented
// defaults so the matching core never has to reject an analysis.
func (a *DistressAnalysis) Normalize() {
	a.Need = ParseNeed(string(a.Need))
	if a.Location == "" {
		a.Location = "Unknown location"
	}
	if a.UrgencyScore > 100 {
		a.UrgencyScore = 100
	}
	if a.UrgencyScore < 0 {
		a.UrgencyScore = 0
	}
	if a.Quantity < 1 {
		a.Quantity = 1
	}
}

// DefaultUrgencyScore is used when the upstream analysis omits the field
// entirely, before clamping.
func DefaultUrgencyScore() int {
	return defaultUrgencyScore
}
