package api

import (
	"fmt"
	"time"
)

type TimelineEntry struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Event     string    `json:"event"`
	Status    string    `json:"status"`
	Icon      string    `json:"icon"`
}

// buildTimeline fabricates the activity feed shown next to a match. The
// steps and staggered timestamps are presentation only.
func buildTimeline(now time.Time, resourceName string) []TimelineEntry {
	return []TimelineEntry{
		{
			ID:        1,
			Timestamp: now,
			Event:     "Distress message received",
			Status:    "completed",
			Icon:      "message",
		},
		{
			ID:        2,
			Timestamp: now.Add(1 * time.Second),
			Event:     "AI analysis completed",
			Status:    "completed",
			Icon:      "ai",
		},
		{
			ID:        3,
			Timestamp: now.Add(2 * time.Second),
			Event:     fmt.Sprintf("Matched with %s", resourceName),
			Status:    "completed",
			Icon:      "resource",
		},
		{
			ID:        4,
			Timestamp: now.Add(3 * time.Second),
			Event:     "Dispatching response team",
			Status:    "in_progress",
			Icon:      "dispatch",
		},
	}
}
