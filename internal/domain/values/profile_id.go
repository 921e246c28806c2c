// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// ProfileID uniquely identifies a profile inside a store.
// The canonical text form is the lookup key and is never reused after deletion.
type ProfileID struct {
	value uuid.UUID
}

// NewProfileID creates a new random (version 4) profile ID.
func NewProfileID() ProfileID {
	return ProfileID{value: uuid.New()}
}

// ParseProfileID parses a string into a ProfileID
func ParseProfileID(s string) (ProfileID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProfileID{}, fmt.Errorf("invalid profile ID: %w", err)
	}
	return ProfileID{value: id}, nil
}

// MustParseProfileID parses a string or panics (for tests only)
func MustParseProfileID(s string) ProfileID {
	id, err := ParseProfileID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileIDFromBytes builds a ProfileID from its 16 byte binary form.
func ProfileIDFromBytes(b []byte) (ProfileID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return ProfileID{}, fmt.Errorf("invalid profile ID: %w", err)
	}
	return ProfileID{value: id}, nil
}

// FromUUID creates a ProfileID from a uuid.UUID
func FromUUID(id uuid.UUID) ProfileID {
	return ProfileID{value: id}
}

// String returns the canonical lowercase, hyphenated form.
func (p ProfileID) String() string {
	return p.value.String()
}

// UUID returns the underlying uuid.UUID
func (p ProfileID) UUID() uuid.UUID {
	return p.value
}

// Bytes returns the 16 byte binary form.
func (p ProfileID) Bytes() []byte {
	b := p.value
	return b[:]
}

// IsZero returns true if this is the zero value
func (p ProfileID) IsZero() bool {
	return p.value == uuid.Nil
}

// Equals checks if two ProfileIDs are equal
func (p ProfileID) Equals(other ProfileID) bool {
	return p.value == other.value
}

// MarshalText implements encoding.TextMarshaler
func (p ProfileID) MarshalText() ([]byte, error) {
	return []byte(p.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *ProfileID) UnmarshalText(data []byte) error {
	id, err := ParseProfileID(string(data))
	if err != nil {
		return err
	}
	*p = id
	return nil
}
