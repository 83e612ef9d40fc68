package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/orionhq/crisis-intel/internal/models"
)

// Store persists the resource catalog in SQLite. The matching core never
// touches the store directly; it reads snapshots loaded from it.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	// seq preserves catalog insertion order; selection tie-breaks rely on it.
	schema := `
		CREATE TABLE IF NOT EXISTS resources (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			subtype TEXT,
			location TEXT,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			capacity INTEGER NOT NULL,
			current_availability INTEGER NOT NULL,
			availability_status TEXT NOT NULL,
			contact TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_resources_type ON resources(type);
  	`

	_, err := s.db.Exec(schema)
	return err
}

// SeedIfEmpty writes the given resources into an empty store. An already
// populated store is left alone so operator edits survive restarts.
func (s *Store) SeedIfEmpty(ctx context.Context, resources []models.Resource) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM resources`).Scan(&count); err != nil {
		return fmt.Errorf("error counting resources: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range resources {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO resources (
				id, name, type, subtype, location,
				latitude, longitude, capacity,
				current_availability, availability_status, contact
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, string(r.Type), r.Subtype, r.Location,
			r.Coordinates.Latitude, r.Coordinates.Longitude, r.Capacity,
			r.CurrentAvailability, string(r.AvailabilityStatus), r.Contact,
		)
		if err != nil {
			return fmt.Errorf("error seeding resource %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// LoadAll reads the full catalog in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]models.Resource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, subtype, location,
		       latitude, longitude, capacity,
		       current_availability, availability_status, contact
		FROM resources
		ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var r models.Resource
		var typ, status string
		err := rows.Scan(
			&r.ID, &r.Name, &typ, &r.Subtype, &r.Location,
			&r.Coordinates.Latitude, &r.Coordinates.Longitude, &r.Capacity,
			&r.CurrentAvailability, &status, &r.Contact,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		r.Type = models.ResourceType(typ)
		r.AvailabilityStatus = models.AvailabilityStatus(status)
		resources = append(resources, r)
	}

	return resources, rows.Err()
}

// UpdateAvailability rewrites the live availability fields of one resource.
func (s *Store) UpdateAvailability(ctx context.Context, id string, currentAvailability int, status models.AvailabilityStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE resources
		SET current_availability = ?, availability_status = ?
		WHERE id = ?`,
		currentAvailability, string(status), id,
	)
	if err != nil {
		return fmt.Errorf("error updating availability for %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("resource %s not found", id)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
