// Package dto holds the data shapes handed from use cases to presentation.
package dto

import (
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/values"
)

// ProfileView is the display form of one stored profile.
type ProfileView struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Variant  string     `json:"variant" yaml:"variant"`
	Renderer string     `json:"renderer" yaml:"renderer"`
	Flags    []FlagView `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// FlagView is one feature flag override. Value holds a string, int64 or bool.
type FlagView struct {
	Value any    `json:"value" yaml:"value"`
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
}

// NewProfileView builds the view of p stored under id. Flags are sorted by name.
func NewProfileView(id values.ProfileID, p entities.Profile) ProfileView {
	view := ProfileView{
		ID:       id.String(),
		Name:     p.Name,
		Variant:  p.Variant.String(),
		Renderer: p.Renderer.String(),
	}
	for _, name := range p.FlagNames() {
		v := p.Flags[name]
		view.Flags = append(view.Flags, FlagView{
			Name:  name,
			Kind:  v.Kind().String(),
			Value: v.Native(),
		})
	}
	return view
}
