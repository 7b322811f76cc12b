package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "carelog/pkg/domain"
)

func mustResidency(t *testing.T, moveIn time.Time, moveOut *time.Time) *Residency {
	t.Helper()
	r, err := NewResidency(id.NewResidencyID(), id.NewResidentID(), id.NewHomeID(), moveIn, moveOut, time.Now())
	require.NoError(t, err)
	return r
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

func TestValidate_DateOrder(t *testing.T) {
	t.Run("rejects move-out before move-in", func(t *testing.T) {
		r := mustResidency(t, Date(2020, time.June, 1), datePtr(2020, time.May, 1))
		err := Validate(r, nil)
		assert.ErrorIs(t, err, ErrInvalidDateOrder)
	})

	t.Run("allows same-day move-in and move-out", func(t *testing.T) {
		r := mustResidency(t, Date(2020, time.June, 1), datePtr(2020, time.June, 1))
		assert.NoError(t, Validate(r, nil))
	})

	t.Run("allows open residency", func(t *testing.T) {
		r := mustResidency(t, Date(2020, time.June, 1), nil)
		assert.NoError(t, Validate(r, nil))
	})
}

func TestValidate_Overlap(t *testing.T) {
	t.Run("rejects open candidate against open existing", func(t *testing.T) {
		// Resident already lives somewhere with no move-out; a second
		// open-ended residency must be rejected regardless of dates.
		existing := mustResidency(t, Date(2020, time.January, 1), nil)
		candidate := mustResidency(t, Date(2020, time.June, 1), nil)
		err := Validate(candidate, []*Residency{existing})
		assert.ErrorIs(t, err, ErrOverlappingResidency)
	})

	t.Run("rejects open candidate starting before a closed existing ends", func(t *testing.T) {
		existing := mustResidency(t, Date(2020, time.January, 1), datePtr(2020, time.August, 1))
		candidate := mustResidency(t, Date(2020, time.June, 1), nil)
		err := Validate(candidate, []*Residency{existing})
		assert.ErrorIs(t, err, ErrOverlappingResidency)
	})

	t.Run("rejects closed candidate overlapping a closed existing", func(t *testing.T) {
		existing := mustResidency(t, Date(2020, time.March, 1), datePtr(2020, time.June, 15))
		candidate := mustResidency(t, Date(2020, time.June, 1), datePtr(2020, time.September, 1))
		err := Validate(candidate, []*Residency{existing})
		assert.ErrorIs(t, err, ErrOverlappingResidency)
	})

	t.Run("rejects closed candidate inside an open existing", func(t *testing.T) {
		existing := mustResidency(t, Date(2020, time.January, 1), nil)
		candidate := mustResidency(t, Date(2020, time.June, 1), datePtr(2020, time.July, 1))
		err := Validate(candidate, []*Residency{existing})
		assert.ErrorIs(t, err, ErrOverlappingResidency)
	})

	t.Run("allows touching boundaries", func(t *testing.T) {
		// One residency ends the day the next begins.
		existing := mustResidency(t, Date(2020, time.January, 1), datePtr(2020, time.June, 1))
		candidate := mustResidency(t, Date(2020, time.June, 1), nil)
		assert.NoError(t, Validate(candidate, []*Residency{existing}))
	})

	t.Run("allows disjoint closed intervals", func(t *testing.T) {
		existing := mustResidency(t, Date(2019, time.January, 1), datePtr(2019, time.December, 1))
		candidate := mustResidency(t, Date(2020, time.June, 1), datePtr(2020, time.September, 1))
		assert.NoError(t, Validate(candidate, []*Residency{existing}))
	})

	t.Run("allows open candidate after all closed residencies end", func(t *testing.T) {
		existing := mustResidency(t, Date(2019, time.January, 1), datePtr(2019, time.December, 1))
		candidate := mustResidency(t, Date(2020, time.January, 1), nil)
		assert.NoError(t, Validate(candidate, []*Residency{existing}))
	})

	t.Run("skips the candidate's own stored copy on update", func(t *testing.T) {
		stored := mustResidency(t, Date(2020, time.January, 1), nil)
		updated := *stored
		updated.Close(Date(2020, time.June, 1), time.Now())
		assert.NoError(t, Validate(&updated, []*Residency{stored}))
	})

	t.Run("date order failure wins over overlap", func(t *testing.T) {
		existing := mustResidency(t, Date(2020, time.January, 1), nil)
		candidate := mustResidency(t, Date(2020, time.June, 1), datePtr(2020, time.May, 1))
		err := Validate(candidate, []*Residency{existing})
		assert.ErrorIs(t, err, ErrInvalidDateOrder)
	})
}

func TestCoversDate(t *testing.T) {
	r := mustResidency(t, Date(2020, time.January, 1), datePtr(2020, time.June, 1))

	assert.False(t, r.CoversDate(Date(2019, time.December, 31)))
	assert.True(t, r.CoversDate(Date(2020, time.January, 1)))
	assert.True(t, r.CoversDate(Date(2020, time.March, 15)))
	assert.True(t, r.CoversDate(Date(2020, time.June, 1)))
	assert.False(t, r.CoversDate(Date(2020, time.June, 2)))

	open := mustResidency(t, Date(2020, time.January, 1), nil)
	assert.True(t, open.CoversDate(Date(2099, time.January, 1)))
}
