package models

import (
	"time"

	residencymodels "carelog/internal/residency/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

// ResidentActivity is one completed caregiving activity for one resident.
// Records are immutable once written: corrections happen by compensating
// entries, never by update, so the aggregation window can trust history.
//
// ResidencyID pins the record to the residency that was open when the
// activity happened, which is what decides the home the activity counts
// toward even after the resident later moves.
type ResidentActivity struct {
	ID              id.ActivityID      `json:"id"`
	ResidentID      id.ResidentID      `json:"resident_id"`
	ResidencyID     id.ResidencyID     `json:"residency_id"`
	HomeID          id.HomeID          `json:"home_id"`
	GroupID         id.ActivityGroupID `json:"group_id"`
	ActivityType    ActivityType       `json:"activity_type"`
	CaregiverRole   CaregiverRole      `json:"caregiver_role"`
	ActivityDate    time.Time          `json:"activity_date"`
	ActivityMinutes int                `json:"activity_minutes"`
	CreatedAt       time.Time          `json:"created_at"`
}

// GroupSubmission describes one activity performed for several residents at
// once. The service fans it out into one ResidentActivity per resident,
// all-or-nothing, correlated by a shared group id.
type GroupSubmission struct {
	ResidentIDs     []id.ResidentID
	ActivityType    ActivityType
	CaregiverRole   CaregiverRole
	ActivityDate    time.Time
	DurationMinutes int
}

func (s *GroupSubmission) Validate() error {
	if len(s.ResidentIDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "submission requires at least one resident")
	}
	seen := make(map[id.ResidentID]bool, len(s.ResidentIDs))
	for _, rid := range s.ResidentIDs {
		if rid.IsNil() {
			return dErrors.New(dErrors.CodeValidation, "submission contains a nil resident id")
		}
		if seen[rid] {
			return dErrors.New(dErrors.CodeValidation, "submission lists resident "+rid.String()+" twice")
		}
		seen[rid] = true
	}
	if !s.ActivityType.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid activity type")
	}
	if !s.CaregiverRole.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid caregiver role")
	}
	if s.ActivityDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "submission requires an activity date")
	}
	if s.DurationMinutes <= 0 {
		return dErrors.New(dErrors.CodeValidation, "duration must be positive")
	}
	return nil
}

// NewResidentActivity builds one record of the fan-out. The residency must be
// the resident's open residency at creation time; the service enforces that.
func NewResidentActivity(activityID id.ActivityID, groupID id.ActivityGroupID, residency *residencymodels.Residency, sub *GroupSubmission, residentID id.ResidentID, now time.Time) *ResidentActivity {
	return &ResidentActivity{
		ID:              activityID,
		ResidentID:      residentID,
		ResidencyID:     residency.ID,
		HomeID:          residency.HomeID,
		GroupID:         groupID,
		ActivityType:    sub.ActivityType,
		CaregiverRole:   sub.CaregiverRole,
		ActivityDate:    residencymodels.TruncateToDay(sub.ActivityDate),
		ActivityMinutes: sub.DurationMinutes,
		CreatedAt:       now,
	}
}
