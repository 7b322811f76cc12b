package models

// Validate checks the candidate residency against every other residency of
// the same resident. It is a pure predicate: the caller owns persistence and
// must not persist on failure. Every write path goes through it, not only
// form submission, so no path can silently corrupt occupancy history.
//
// Rules, in order, first failure wins:
//  1. MoveOut set and before MoveIn -> ErrInvalidDateOrder.
//  2. Any overlap with an existing residency -> ErrOverlappingResidency.
//
// Overlap treats intervals as [MoveIn, MoveOut) with an open MoveOut
// unbounded into the future, so one residency may end on the day another
// begins.
func Validate(candidate *Residency, existing []*Residency) error {
	if candidate.MoveOut != nil && candidate.MoveOut.Before(candidate.MoveIn) {
		return ErrInvalidDateOrder
	}

	for _, other := range existing {
		if other.ID == candidate.ID {
			// Updates revalidate against the stored copy of themselves.
			continue
		}
		if overlaps(candidate, other) {
			return ErrOverlappingResidency
		}
	}
	return nil
}

func overlaps(candidate, other *Residency) bool {
	if candidate.MoveOut != nil {
		return other.MoveIn.Before(*candidate.MoveOut) &&
			(other.MoveOut == nil || other.MoveOut.After(candidate.MoveIn))
	}
	// Open-ended candidate: collides with any other open residency, and with
	// any closed one that ends after the candidate begins.
	return other.MoveOut == nil || other.MoveOut.After(candidate.MoveIn)
}
