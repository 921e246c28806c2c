package entities

import (
	"maps"
	"slices"
	"strings"

	"github.com/yarwhq/yarw/internal/domain/values"
)

// Defaults holds launcher wide settings persisted next to the profiles.
type Defaults struct {
	WinerootPath string
}

// ProfileSet is the unit of persistence: every profile plus the defaults,
// always written and read as one snapshot.
type ProfileSet struct {
	Profiles map[values.ProfileID]Profile
	Defaults Defaults
}

// NewProfileSet returns an empty snapshot.
func NewProfileSet() *ProfileSet {
	return &ProfileSet{Profiles: make(map[values.ProfileID]Profile)}
}

// Len returns the number of profiles.
func (s *ProfileSet) Len() int {
	return len(s.Profiles)
}

// SortedIDs returns the profile IDs ordered by their canonical text form.
func (s *ProfileSet) SortedIDs() []values.ProfileID {
	return slices.SortedFunc(maps.Keys(s.Profiles), func(a, b values.ProfileID) int {
		return strings.Compare(a.String(), b.String())
	})
}

// Clone returns a deep copy of the snapshot.
func (s *ProfileSet) Clone() *ProfileSet {
	out := &ProfileSet{
		Profiles: make(map[values.ProfileID]Profile, len(s.Profiles)),
		Defaults: s.Defaults,
	}
	for id, p := range s.Profiles {
		out.Profiles[id] = p.Clone()
	}
	return out
}

// Equal reports whether two snapshots hold the same defaults and profiles.
func (s *ProfileSet) Equal(other *ProfileSet) bool {
	if s.Defaults != other.Defaults || len(s.Profiles) != len(other.Profiles) {
		return false
	}
	for id, p := range s.Profiles {
		q, ok := other.Profiles[id]
		if !ok || !p.Equal(q) {
			return false
		}
	}
	return true
}
