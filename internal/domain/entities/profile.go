// Package entities contains domain entities for the launcher domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yarwhq/yarw/internal/domain/values"
)

// Profile is a named launch configuration.
// It carries no identity of its own; the store that owns it supplies the ProfileID.
type Profile struct {
	Flags    map[string]values.FlagValue
	Name     string
	Variant  values.ApplicationVariant
	Renderer values.RenderBackend
}

// NewProfile creates a profile with the default variant and render backend.
func NewProfile(name string) Profile {
	return Profile{
		Name:     name,
		Variant:  values.VariantPlayer,
		Renderer: values.DefaultRenderBackend,
		Flags:    make(map[string]values.FlagValue),
	}
}

// Clone returns a deep copy. A nil flag map becomes an empty one.
func (p Profile) Clone() Profile {
	out := p
	out.Flags = make(map[string]values.FlagValue, len(p.Flags))
	maps.Copy(out.Flags, p.Flags)
	return out
}

// Equal reports whether two profiles hold the same fields and flags,
// including the kind of every flag value.
func (p Profile) Equal(other Profile) bool {
	if p.Name != other.Name || p.Variant != other.Variant || p.Renderer != other.Renderer {
		return false
	}
	return maps.Equal(p.Flags, other.Flags)
}

// SetFlag adds or replaces a feature flag override.
func (p *Profile) SetFlag(name string, value values.FlagValue) {
	if p.Flags == nil {
		p.Flags = make(map[string]values.FlagValue)
	}
	p.Flags[name] = value
}

// Flag returns the override for name, if any.
func (p Profile) Flag(name string) (values.FlagValue, bool) {
	v, ok := p.Flags[name]
	return v, ok
}

// RemoveFlag deletes an override and reports whether it existed.
func (p *Profile) RemoveFlag(name string) bool {
	if _, ok := p.Flags[name]; !ok {
		return false
	}
	delete(p.Flags, name)
	return true
}

// FlagNames returns the flag names in lexical order.
func (p Profile) FlagNames() []string {
	return slices.Sorted(maps.Keys(p.Flags))
}

// Validate checks the closed enums and that every flag carries a value.
// Any string, including the empty one, is a valid name.
func (p Profile) Validate() error {
	if err := p.Variant.Validate(); err != nil {
		return err
	}
	if err := p.Renderer.Validate(); err != nil {
		return err
	}
	for name, v := range p.Flags {
		if v == nil {
			return fmt.Errorf("feature flag %q has no value", name)
		}
	}
	return nil
}
