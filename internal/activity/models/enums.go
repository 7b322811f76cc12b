package models

import dErrors "carelog/pkg/domain-errors"

// ActivityType categorizes what was done with the resident.
//
// Construct via ParseActivityType at trust boundaries; direct casting
// bypasses validation. There is deliberately no default type: callers must
// say what happened (a hidden default silently miscategorizes).
type ActivityType string

const (
	ActivityOutdoor      ActivityType = "outdoor"
	ActivityCasualSocial ActivityType = "casual_social"
	ActivityCulture      ActivityType = "culture"
	ActivityDiscussion   ActivityType = "discussion"
	ActivityGuided       ActivityType = "guided"
	ActivityMusic        ActivityType = "music"
	ActivitySelfGuided   ActivityType = "self_guided"
	ActivityTrip         ActivityType = "trip"
)

var validActivityTypes = map[ActivityType]bool{
	ActivityOutdoor:      true,
	ActivityCasualSocial: true,
	ActivityCulture:      true,
	ActivityDiscussion:   true,
	ActivityGuided:       true,
	ActivityMusic:        true,
	ActivitySelfGuided:   true,
	ActivityTrip:         true,
}

func ParseActivityType(s string) (ActivityType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "activity type cannot be empty")
	}
	t := ActivityType(s)
	if !validActivityTypes[t] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid activity type")
	}
	return t, nil
}

func (t ActivityType) IsValid() bool {
	return validActivityTypes[t]
}

func (t ActivityType) String() string {
	return string(t)
}

// CaregiverRole identifies who performed the activity or work.
type CaregiverRole string

const (
	RoleFamily          CaregiverRole = "family"
	RoleFriend          CaregiverRole = "friend"
	RoleHobbyInstructor CaregiverRole = "hobby_instructor"
	RoleNurse           CaregiverRole = "nurse"
	RolePhysioTherapist CaregiverRole = "physio_therapist"
	RolePracticalNurse  CaregiverRole = "practical_nurse"
	RoleStaff           CaregiverRole = "staff"
	RoleVolunteer       CaregiverRole = "volunteer"
)

var validCaregiverRoles = map[CaregiverRole]bool{
	RoleFamily:          true,
	RoleFriend:          true,
	RoleHobbyInstructor: true,
	RoleNurse:           true,
	RolePhysioTherapist: true,
	RolePracticalNurse:  true,
	RoleStaff:           true,
	RoleVolunteer:       true,
}

func ParseCaregiverRole(s string) (CaregiverRole, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "caregiver role cannot be empty")
	}
	r := CaregiverRole(s)
	if !validCaregiverRoles[r] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid caregiver role")
	}
	return r, nil
}

func (r CaregiverRole) IsValid() bool {
	return validCaregiverRoles[r]
}

func (r CaregiverRole) String() string {
	return string(r)
}
