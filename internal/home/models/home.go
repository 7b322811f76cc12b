package models

import (
	"time"

	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

// Home is a care home. It owns residencies and work records through foreign
// keys; the structs here carry no back-references.
type Home struct {
	ID   id.HomeID `json:"id"`
	Name string    `json:"name"`
	// GroupID is optional. Grouping is informational only and drives no
	// behavior in the core.
	GroupID   *id.HomeGroupID `json:"group_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HomeGroup is a label shared by several homes (an operator, a region).
type HomeGroup struct {
	ID        id.HomeGroupID `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewHome(homeID id.HomeID, name string, groupID *id.HomeGroupID, now time.Time) (*Home, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "home name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "home name must be 128 characters or less")
	}
	return &Home{
		ID:        homeID,
		Name:      name,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func NewHomeGroup(groupID id.HomeGroupID, name string, now time.Time) (*HomeGroup, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "home group name cannot be empty")
	}
	return &HomeGroup{ID: groupID, Name: name, CreatedAt: now}, nil
}
