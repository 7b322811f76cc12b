package domain

import (
	"github.com/google/uuid"

	dErrors "carelog/pkg/domain-errors"
)

// Typed UUID identifiers for the core entities. Distinct types keep a
// ResidentID from ever being passed where a HomeID is expected; the compiler
// enforces what foreign keys only catch at runtime.
//
// Construct via the Parse functions at trust boundaries; direct conversion
// bypasses validation.
type (
	ResidentID  uuid.UUID
	HomeID      uuid.UUID
	HomeGroupID uuid.UUID
	ResidencyID uuid.UUID
	ActivityID  uuid.UUID
	// ActivityGroupID correlates the per-resident records created from one
	// multi-resident activity submission.
	ActivityGroupID uuid.UUID
	WorkID          uuid.UUID
)

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be nil")
	}
	return u, nil
}

func ParseResidentID(s string) (ResidentID, error) {
	u, err := parseUUID(s, "resident")
	return ResidentID(u), err
}

func ParseHomeID(s string) (HomeID, error) {
	u, err := parseUUID(s, "home")
	return HomeID(u), err
}

func ParseHomeGroupID(s string) (HomeGroupID, error) {
	u, err := parseUUID(s, "home group")
	return HomeGroupID(u), err
}

func ParseResidencyID(s string) (ResidencyID, error) {
	u, err := parseUUID(s, "residency")
	return ResidencyID(u), err
}

func ParseActivityID(s string) (ActivityID, error) {
	u, err := parseUUID(s, "activity")
	return ActivityID(u), err
}

func ParseActivityGroupID(s string) (ActivityGroupID, error) {
	u, err := parseUUID(s, "activity group")
	return ActivityGroupID(u), err
}

func ParseWorkID(s string) (WorkID, error) {
	u, err := parseUUID(s, "work")
	return WorkID(u), err
}

func (id ResidentID) String() string  { return uuid.UUID(id).String() }
func (id ResidentID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id HomeID) String() string      { return uuid.UUID(id).String() }
func (id HomeID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id HomeGroupID) String() string { return uuid.UUID(id).String() }
func (id HomeGroupID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ResidencyID) String() string { return uuid.UUID(id).String() }
func (id ResidencyID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ActivityID) String() string  { return uuid.UUID(id).String() }
func (id ActivityID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }

func (id ActivityGroupID) String() string { return uuid.UUID(id).String() }
func (id ActivityGroupID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id WorkID) String() string { return uuid.UUID(id).String() }
func (id WorkID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText makes the typed IDs render as canonical UUID strings in JSON
// and log output instead of raw byte arrays.
func (id ResidentID) MarshalText() ([]byte, error)      { return []byte(id.String()), nil }
func (id HomeID) MarshalText() ([]byte, error)          { return []byte(id.String()), nil }
func (id HomeGroupID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id ResidencyID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id ActivityID) MarshalText() ([]byte, error)      { return []byte(id.String()), nil }
func (id ActivityGroupID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id WorkID) MarshalText() ([]byte, error)          { return []byte(id.String()), nil }

func (id *ResidentID) UnmarshalText(b []byte) error {
	parsed, err := ParseResidentID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *HomeID) UnmarshalText(b []byte) error {
	parsed, err := ParseHomeID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *HomeGroupID) UnmarshalText(b []byte) error {
	parsed, err := ParseHomeGroupID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *ResidencyID) UnmarshalText(b []byte) error {
	parsed, err := ParseResidencyID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *ActivityID) UnmarshalText(b []byte) error {
	parsed, err := ParseActivityID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *ActivityGroupID) UnmarshalText(b []byte) error {
	parsed, err := ParseActivityGroupID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *WorkID) UnmarshalText(b []byte) error {
	parsed, err := ParseWorkID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NewResidentID and friends mint fresh identifiers for newly created records.
func NewResidentID() ResidentID           { return ResidentID(uuid.New()) }
func NewHomeID() HomeID                   { return HomeID(uuid.New()) }
func NewHomeGroupID() HomeGroupID         { return HomeGroupID(uuid.New()) }
func NewResidencyID() ResidencyID         { return ResidencyID(uuid.New()) }
func NewActivityID() ActivityID           { return ActivityID(uuid.New()) }
func NewActivityGroupID() ActivityGroupID { return ActivityGroupID(uuid.New()) }
func NewWorkID() WorkID                   { return WorkID(uuid.New()) }
