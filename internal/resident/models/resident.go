package models

import (
	"time"

	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

// Resident is a person receiving care. Residents are never physically
// deleted: residency and activity history keeps referencing them after they
// move out.
//
// Invariants:
//   - FirstName is non-empty
//   - LastInitial is exactly one character
type Resident struct {
	ID          id.ResidentID `json:"id"`
	FirstName   string        `json:"first_name"`
	LastInitial string        `json:"last_initial"`
	// OnHiatus marks residents temporarily away (hospital stay, family
	// visit). Hiatus overrides activity-level classification entirely.
	OnHiatus  bool      `json:"on_hiatus"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResident(residentID id.ResidentID, firstName, lastInitial string, now time.Time) (*Resident, error) {
	if firstName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "resident first name cannot be empty")
	}
	if len(lastInitial) != 1 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "resident last initial must be a single character")
	}
	return &Resident{
		ID:          residentID,
		FirstName:   firstName,
		LastInitial: lastInitial,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// FullName is the display form used in reports.
func (r *Resident) FullName() string {
	return r.FirstName + " " + r.LastInitial
}

// SetHiatus toggles the hiatus flag, tracking when the change happened.
func (r *Resident) SetHiatus(onHiatus bool, now time.Time) {
	r.OnHiatus = onHiatus
	r.UpdatedAt = now
}
