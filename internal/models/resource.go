package models

type ResourceType string

const (
	ResourceTypeMedical ResourceType = "medical"
	ResourceTypeFood    ResourceType = "food"
	ResourceTypeWater   ResourceType = "water"
	ResourceTypeRescue  ResourceType = "rescue"
	ResourceTypeShelter ResourceType = "shelter"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityLimited     AvailabilityStatus = "limited"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Resource is one catalog entry. Records are read-only from the matching
// core's perspective; availability fields are only rewritten by the feed,
// between matching calls.
type Resource struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Type                ResourceType       `json:"type"`
	Subtype             string             `json:"subtype"`
	Location            string             `json:"location"`
	Coordinates         Coordinates        `json:"coordinates"`
	Capacity            int                `json:"capacity"`
	CurrentAvailability int                `json:"currentAvailability"`
	AvailabilityStatus  AvailabilityStatus `json:"availabilityStatus"`
	Contact             string             `json:"contact"`
}
