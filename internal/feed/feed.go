// Package feed is the collaborator that rewrites resource availability
// between matching calls. The matching core only ever reads immutable
// snapshots; this package applies updates to the store and swaps fresh
// snapshots into the holder.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orionhq/crisis-intel/internal/catalog"
	"github.com/orionhq/crisis-intel/internal/events"
	"github.com/orionhq/crisis-intel/internal/models"
	"github.com/orionhq/crisis-intel/internal/worker"
)

// Store is the write surface the feed needs from the catalog store.
type Store interface {
	LoadAll(ctx context.Context) ([]models.Resource, error)
	UpdateAvailability(ctx context.Context, id string, currentAvailability int, status models.AvailabilityStatus) error
}

// Update is one availability change for a single resource.
type Update struct {
	ResourceID          string
	CurrentAvailability int
	AvailabilityStatus  models.AvailabilityStatus
}

type Manager struct {
	store       Store
	holder      *catalog.Holder
	broadcaster *events.Broadcaster
	pool        *worker.Pool[Update]
	interval    time.Duration
	wg          sync.WaitGroup
}

func NewManager(store Store, holder *catalog.Holder, broadcaster *events.Broadcaster, workers, bufferSize int, interval time.Duration) *Manager {
	m := &Manager{
		store:       store,
		holder:      holder,
		broadcaster: broadcaster,
		interval:    interval,
	}
	m.pool = worker.NewPool(workers, bufferSize, m.apply)
	return m
}

func (m *Manager) Start(ctx context.Context) {
	m.pool.Start(ctx)

	m.wg.Add(1)
	go m.runRefresher(ctx)
}

// Submit queues one availability update for a worker to apply.
func (m *Manager) Submit(u Update) {
	m.pool.Submit(u)
}

func (m *Manager) apply(ctx context.Context, u Update) error {
	r, ok := m.holder.Current().Get(u.ResourceID)
	if !ok {
		slog.Warn("availability update for unknown resource", "id", u.ResourceID)
		return fmt.Errorf("unknown resource: %s", u.ResourceID)
	}

	avail := u.CurrentAvailability
	if avail < 0 {
		avail = 0
	}
	if avail > r.Capacity {
		avail = r.Capacity
	}

	if err := m.store.UpdateAvailability(ctx, u.ResourceID, avail, u.AvailabilityStatus); err != nil {
		slog.Error("error applying availability update", "id", u.ResourceID, "error", err)
		return err
	}

	if err := m.Reload(ctx); err != nil {
		return err
	}

	if m.broadcaster != nil {
		m.broadcaster.Broadcast(events.Event{
			ID:         uuid.NewString(),
			Type:       events.TypeAvailability,
			ResourceID: u.ResourceID,
			Message:    fmt.Sprintf("%s availability set to %d (%s)", r.Name, avail, u.AvailabilityStatus),
			Timestamp:  time.Now().UTC(),
		})
	}

	slog.Info("applied availability update", "id", u.ResourceID, "availability", avail, "status", u.AvailabilityStatus)
	return nil
}

// Reload swaps a fresh snapshot of the store into the holder.
func (m *Manager) Reload(ctx context.Context) error {
	resources, err := m.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("error reloading catalog: %w", err)
	}
	m.holder.Swap(catalog.NewSnapshot(resources))
	return nil
}

func (m *Manager) runRefresher(ctx context.Context) {
	defer m.wg.Done()
	slog.Info("starting catalog refresher", "interval", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("catalog refresher shutting down")
			return
		case <-ticker.C:
			if err := m.Reload(ctx); err != nil {
				slog.Error("catalog refresh failed", "error", err)
			}
		}
	}
}

func (m *Manager) Stop() {
	m.wg.Wait()
	m.pool.Stop()
	slog.Info("availability feed stopped")
}
