package models

import (
	"errors"
	"time"

	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

// Sentinel errors for residency invariants. Stores and the validator return
// these; the service translates them into coded domain errors while keeping
// errors.Is matchability for callers that must roll back.
var (
	// ErrInvalidDateOrder: move-out precedes move-in.
	ErrInvalidDateOrder = errors.New("move-in date must precede move-out date")
	// ErrOverlappingResidency: the write would give the resident two homes at once.
	ErrOverlappingResidency = errors.New("resident cannot have overlapping residencies")
	// ErrResidencyNotFound: the resident has no open residency.
	ErrResidencyNotFound = errors.New("no current residency for resident")
	// ErrMultipleCurrentResidencies: invariant-violation guard. Unreachable
	// while every write path validates, but detected rather than silently
	// picking one.
	ErrMultipleCurrentResidencies = errors.New("resident has more than one open residency")
)

// Residency is one continuous interval during which a resident occupies a
// home. MoveOut nil means the resident currently lives there ("open"
// residency).
//
// Invariants (enforced by Validate before every persist):
//   - MoveIn <= MoveOut whenever MoveOut is set
//   - no two residencies of the same resident overlap; an open MoveOut is
//     unbounded into the future; same-day boundary touching is allowed
//   - at most one open residency per resident
type Residency struct {
	ID         id.ResidencyID `json:"id"`
	ResidentID id.ResidentID  `json:"resident_id"`
	HomeID     id.HomeID      `json:"home_id"`
	MoveIn     time.Time      `json:"move_in"`
	MoveOut    *time.Time     `json:"move_out,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Date builds a calendar date at UTC midnight. Residency and activity dates
// carry day precision only.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDay drops the time-of-day component, keeping day precision.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewResidency(residencyID id.ResidencyID, residentID id.ResidentID, homeID id.HomeID, moveIn time.Time, moveOut *time.Time, now time.Time) (*Residency, error) {
	if residentID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "residency requires a resident")
	}
	if homeID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "residency requires a home")
	}
	if moveIn.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "residency requires a move-in date")
	}
	r := &Residency{
		ID:         residencyID,
		ResidentID: residentID,
		HomeID:     homeID,
		MoveIn:     TruncateToDay(moveIn),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if moveOut != nil {
		out := TruncateToDay(*moveOut)
		r.MoveOut = &out
	}
	return r, nil
}

// IsOpen reports whether the resident still lives at the home.
func (r *Residency) IsOpen() bool {
	return r.MoveOut == nil
}

// Close sets the move-out date. Validate must run on the result before it is
// persisted.
func (r *Residency) Close(moveOut time.Time, now time.Time) {
	out := TruncateToDay(moveOut)
	r.MoveOut = &out
	r.UpdatedAt = now
}

// CoversDate reports whether the residency interval contains the given day.
// Both endpoints are inclusive: the move-in and move-out days themselves
// count as residence.
func (r *Residency) CoversDate(day time.Time) bool {
	day = TruncateToDay(day)
	if day.Before(r.MoveIn) {
		return false
	}
	return r.MoveOut == nil || !r.MoveOut.Before(day)
}
