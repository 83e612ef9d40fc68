// Package analyzer turns a free-text distress message into a structured
// DistressAnalysis. The Claude implementation calls the Anthropic API; the
// keyword implementation is an offline stand-in so the service runs
// without an API key. Both absorb missing fields into the documented
// defaults before handing the analysis to the matcher.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/orionhq/crisis-intel/internal/models"
)

type Analyzer interface {
	Analyze(ctx context.Context, message string) (models.DistressAnalysis, error)
}

// wireAnalysis is the JSON shape the extraction step produces. UrgencyScore
// is a pointer so an omitted field can default to 50 instead of 0.
type wireAnalysis struct {
	Need             string                  `json:"need"`
	Quantity         int                     `json:"quantity"`
	Location         string                  `json:"location"`
	UrgencyLevel     string                  `json:"urgencyLevel"`
	UrgencyScore     *int                    `json:"urgencyScore"`
	Reasoning        []string                `json:"reasoning"`
	ExtractedDetails models.ExtractedDetails `json:"extractedDetails"`
}

func parseAnalysis(text string) (models.DistressAnalysis, error) {
	cleaned := extractJSON(text)

	var w wireAnalysis
	if err := json.Unmarshal([]byte(cleaned), &w); err != nil {
		return models.DistressAnalysis{}, fmt.Errorf("error decoding analysis: %w", err)
	}

	a := models.DistressAnalysis{
		Need:             models.NeedType(w.Need),
		Quantity:         w.Quantity,
		Location:         w.Location,
		UrgencyLevel:     w.UrgencyLevel,
		Reasoning:        w.Reasoning,
		ExtractedDetails: w.ExtractedDetails,
	}
	if w.UrgencyScore != nil {
		a.UrgencyScore = *w.UrgencyScore
	} else {
		a.UrgencyScore = models.DefaultUrgencyScore()
	}

	a.Normalize()
	if a.UrgencyLevel == "" {
		a.UrgencyLevel = urgencyLevel(a.UrgencyScore)
	}

	return a, nil
}

// extractJSON pulls the JSON object out of a model response that may be
// wrapped in code fences or surrounding prose.
func extractJSON(text string) string {
	trimmed := strings.TrimSpace(text)

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		return trimmed[start : end+1]
	}
	return trimmed
}

func urgencyLevel(score int) string {
	switch {
	case score <= 40:
		return "low"
	case score <= 60:
		return "medium"
	case score <= 80:
		return "high"
	default:
		return "critical"
	}
}
