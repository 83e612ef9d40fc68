package models

// MatchResult is the projection of the winning candidate returned to the
// presentation layer. It is always populated: when nothing can be scored
// the no-match sentinel fills the same shape.
type MatchResult struct {
	ID                  string             `json:"id,omitempty"`
	Name                string             `json:"name"`
	Type                string             `json:"type"`
	Subtype             string             `json:"subtype,omitempty"`
	Location            string             `json:"location"`
	Distance            string             `json:"distance"`
	ETA                 string             `json:"eta"`
	AvailabilityStatus  AvailabilityStatus `json:"availabilityStatus"`
	Capacity            int                `json:"capacity,omitempty"`
	CurrentAvailability int                `json:"currentAvailability,omitempty"`
	Contact             string             `json:"contact"`
	MatchScore          int                `json:"matchScore,omitempty"`
	Message             string             `json:"message,omitempty"`
}
