package models

import (
	"time"

	activitymodels "carelog/internal/activity/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

const maxWorkTypeLength = 25

// Work is one block of caregiver work performed at a home. Duration is
// stored in minutes; hours are always derived, never stored independently.
type Work struct {
	ID              id.WorkID                    `json:"id"`
	HomeID          id.HomeID                    `json:"home_id"`
	WorkType        string                       `json:"work_type"`
	CaregiverRole   activitymodels.CaregiverRole `json:"caregiver_role"`
	Date            time.Time                    `json:"date"`
	DurationMinutes int                          `json:"duration_minutes"`
	CreatedAt       time.Time                    `json:"created_at"`
}

func NewWork(workID id.WorkID, homeID id.HomeID, workType string, role activitymodels.CaregiverRole, date time.Time, durationMinutes int, now time.Time) (*Work, error) {
	if homeID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "work requires a home")
	}
	if workType == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "work type is required")
	}
	if len(workType) > maxWorkTypeLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "work type is too long")
	}
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "unknown caregiver role")
	}
	if date.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "work date is required")
	}
	if durationMinutes < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "work duration cannot be negative")
	}
	return &Work{
		ID:              workID,
		HomeID:          homeID,
		WorkType:        workType,
		CaregiverRole:   role,
		Date:            date.UTC().Truncate(24 * time.Hour),
		DurationMinutes: durationMinutes,
		CreatedAt:       now,
	}, nil
}

// DurationHours returns the duration in fractional hours.
func (w *Work) DurationHours() float64 {
	return float64(w.DurationMinutes) / 60.0
}

// RoleTypeHours is one aggregation row: total hours for a caregiver role and
// work type within a home, with the share of that role's overall hours.
type RoleTypeHours struct {
	Role           activitymodels.CaregiverRole `json:"role"`
	WorkType       string                       `json:"work_type"`
	TotalHours     float64                      `json:"total_hours"`
	RoleTotalHours float64                      `json:"role_total_hours"`
	PercentOfRole  float64                      `json:"percent_of_role_total_hours"`
}

// DailyRoleTypeHours is RoleTypeHours broken down per day.
type DailyRoleTypeHours struct {
	Date           time.Time                    `json:"date"`
	Role           activitymodels.CaregiverRole `json:"role"`
	WorkType       string                       `json:"work_type"`
	TotalHours     float64                      `json:"total_hours"`
	RoleTotalHours float64                      `json:"role_total_hours"`
	PercentOfRole  float64                      `json:"percent_of_role_total_hours"`
}

// RoleHours is one aggregation row: a caregiver role's total hours at a home
// and its share of the home's overall hours.
type RoleHours struct {
	Role          activitymodels.CaregiverRole `json:"role"`
	TotalHours    float64                      `json:"total_hours"`
	PercentOfHome float64                      `json:"percent_of_home_total_hours"`
}
