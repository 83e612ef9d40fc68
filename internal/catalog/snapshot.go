package catalog

import (
	"sync/atomic"

	"github.com/orionhq/crisis-intel/internal/models"
)

// Snapshot is an immutable view of the catalog taken at one point in time.
// Matching calls read a snapshot without locking; the feed swaps in fresh
// snapshots between calls, so individual matches tolerate benign staleness.
type Snapshot struct {
	resources []models.Resource
	byID      map[string]models.Resource
}

func NewSnapshot(resources []models.Resource) *Snapshot {
	copied := make([]models.Resource, len(resources))
	copy(copied, resources)

	byID := make(map[string]models.Resource, len(copied))
	for _, r := range copied {
		byID[r.ID] = r
	}

	return &Snapshot{resources: copied, byID: byID}
}

// List returns all resources in catalog insertion order.
func (s *Snapshot) List() []models.Resource {
	out := make([]models.Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

// ListByType returns the resources of one type, preserving catalog order.
func (s *Snapshot) ListByType(t models.ResourceType) []models.Resource {
	var out []models.Resource
	for _, r := range s.resources {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func (s *Snapshot) Get(id string) (models.Resource, bool) {
	r, ok := s.byID[id]
	return r, ok
}

func (s *Snapshot) Len() int {
	return len(s.resources)
}

// Holder hands out the current snapshot and lets the feed swap in a new
// one atomically. It satisfies the same read surface as Snapshot.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

func NewHolder(initial *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(initial)
	return h
}

func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

func (h *Holder) Swap(s *Snapshot) {
	h.current.Store(s)
}

func (h *Holder) List() []models.Resource {
	return h.Current().List()
}

func (h *Holder) ListByType(t models.ResourceType) []models.Resource {
	return h.Current().ListByType(t)
}
