package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openfleet/vehicle-registry/pkg/models"
)

// Vehicles is the repository for the vehicles table.
type Vehicles struct {
	db *DB
}

// NewVehicles builds the repository on an open database handle.
func NewVehicles(db *DB) *Vehicles {
	return &Vehicles{db: db}
}

// Inserted carries the server-generated columns of a newly created row.
type Inserted struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// listQuery picks the list statement. Filters are nil when the query
// parameter was absent; a present vin wins over make and matches exactly
// (an empty value matches nothing), a present make matches as a
// case-sensitive substring.
func listQuery(vin, make *string) (string, []any) {
	switch {
	case vin != nil:
		return `SELECT * FROM vehicles WHERE vin = $1`, []any{*vin}
	case make != nil:
		return `SELECT * FROM vehicles WHERE make LIKE $1`, []any{"%" + *make + "%"}
	default:
		return `SELECT * FROM vehicles`, nil
	}
}

// List returns vehicles, optionally filtered. No ordering is applied.
func (v *Vehicles) List(ctx context.Context, vin, make *string) ([]models.Vehicle, error) {
	sql, args := listQuery(vin, make)
	return queryMany[models.Vehicle](ctx, v.db, sql, args...)
}

// Get fetches one vehicle by id. Returns ErrNoResult when the id is
// unassigned and ErrMultipleResults if the primary key invariant is broken.
func (v *Vehicles) Get(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return queryOne[models.Vehicle](ctx, v.db,
		`SELECT * FROM vehicles WHERE id = $1`, id)
}

// CountByVIN reports how many rows carry the given VIN.
func (v *Vehicles) CountByVIN(ctx context.Context, vin string) (int, error) {
	rows, err := queryMany[models.Vehicle](ctx, v.db,
		`SELECT * FROM vehicles WHERE vin = $1`, vin)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Insert stores a new vehicle and returns the generated id and timestamps.
func (v *Vehicles) Insert(ctx context.Context, vehicle *models.Vehicle) (*Inserted, error) {
	return queryOne[Inserted](ctx, v.db,
		`INSERT INTO vehicles (vin, make, model, year, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		vehicle.VIN, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Notes)
}

// Delete removes the vehicle with the given id and reports how many rows
// went away (0 or 1).
func (v *Vehicles) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return v.db.deleteQuery(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
}
