package catalog

import (
	"context"
	"testing"

	"github.com/orionhq/crisis-intel/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SeedAndLoad(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.SeedIfEmpty(ctx, Seed()); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	resources, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	seed := Seed()
	if len(resources) != len(seed) {
		t.Fatalf("expected %d resources, got %d", len(seed), len(resources))
	}

	// Insertion order must survive the round trip; tie-breaks depend on it.
	for i, r := range resources {
		if r.ID != seed[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, seed[i].ID, r.ID)
		}
	}

	if resources[0].Coordinates != seed[0].Coordinates {
		t.Errorf("coordinates mismatch: %+v vs %+v", resources[0].Coordinates, seed[0].Coordinates)
	}
}

func TestStore_SeedIfEmpty_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.SeedIfEmpty(ctx, Seed()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := store.SeedIfEmpty(ctx, Seed()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	resources, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(resources) != len(Seed()) {
		t.Errorf("expected %d resources after double seed, got %d", len(Seed()), len(resources))
	}
}

func TestStore_UpdateAvailability(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.SeedIfEmpty(ctx, Seed()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := store.UpdateAvailability(ctx, "MED-001", 3, models.AvailabilityLimited); err != nil {
		t.Fatalf("UpdateAvailability failed: %v", err)
	}

	resources, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	snap := NewSnapshot(resources)
	r, ok := snap.Get("MED-001")
	if !ok {
		t.Fatal("MED-001 missing after update")
	}
	if r.CurrentAvailability != 3 {
		t.Errorf("expected availability 3, got %d", r.CurrentAvailability)
	}
	if r.AvailabilityStatus != models.AvailabilityLimited {
		t.Errorf("expected status limited, got %s", r.AvailabilityStatus)
	}
}

func TestStore_UpdateAvailability_UnknownID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.UpdateAvailability(ctx, "nope", 1, models.AvailabilityAvailable); err == nil {
		t.Error("expected error for unknown resource id")
	}
}

func TestSnapshot_ListByType(t *testing.T) {
	snap := NewSnapshot(Seed())

	medical := snap.ListByType(models.ResourceTypeMedical)
	if len(medical) != 3 {
		t.Errorf("expected 3 medical resources, got %d", len(medical))
	}
	for _, r := range medical {
		if r.Type != models.ResourceTypeMedical {
			t.Errorf("unexpected type %s in medical listing", r.Type)
		}
	}

	if got := snap.ListByType("unknown"); len(got) != 0 {
		t.Errorf("expected no resources for unknown type, got %d", len(got))
	}
}

func TestSnapshot_ListCopies(t *testing.T) {
	snap := NewSnapshot(Seed())

	first := snap.List()
	first[0].Name = "mutated"

	if snap.List()[0].Name == "mutated" {
		t.Error("List must return a copy, not the backing slice")
	}
}

func TestHolder_Swap(t *testing.T) {
	h := NewHolder(NewSnapshot(Seed()))

	if h.Current().Len() != len(Seed()) {
		t.Fatalf("unexpected initial snapshot size %d", h.Current().Len())
	}

	h.Swap(NewSnapshot(nil))
	if h.Current().Len() != 0 {
		t.Errorf("expected empty snapshot after swap, got %d", h.Current().Len())
	}
}
