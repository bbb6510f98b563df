package models

import (
	"time"

	"github.com/google/uuid"
)

// NotesPlaceholder is stored when a create request carries no notes.
const NotesPlaceholder = "super secret field no one should see"

// NotesOBDAdvisory replaces any client or default notes when the model
// year is newer than 1994.
const NotesOBDAdvisory = "too old for OBD II"

// Vehicle is one row of the vehicles table. Optional columns are pointers
// so NULL survives the round trip.
type Vehicle struct {
	ID        uuid.UUID `db:"id"`
	VIN       string    `db:"vin"`
	Make      *string   `db:"make"`
	Model     *string   `db:"model"`
	Year      *int32    `db:"year"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
