package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/values"
)

// profileFields are the flags that set profile fields on create and update.
type profileFields struct {
	name     string
	variant  string
	renderer string
	flags    []string
}

func (f *profileFields) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Profile name")
	cmd.Flags().StringVar(&f.variant, "variant", "", "Application variant: player, studio")
	cmd.Flags().StringVar(&f.renderer, "renderer", "", "Render backend: d3d11, vulkan, opengl")
	cmd.Flags().StringArrayVar(&f.flags, "flag", nil,
		"Feature flag override NAME=VALUE or NAME=KIND:VALUE (repeatable)")
}

// apply copies every flag the user set onto p.
func (f *profileFields) apply(cmd *cobra.Command, p *entities.Profile) error {
	if cmd.Flags().Changed("name") {
		p.Name = f.name
	}
	if cmd.Flags().Changed("variant") {
		v, err := values.ParseApplicationVariant(f.variant)
		if err != nil {
			return apperrors.NewValidationError("variant", err.Error())
		}
		p.Variant = v
	}
	if cmd.Flags().Changed("renderer") {
		r, err := values.ParseRenderBackend(f.renderer)
		if err != nil {
			return apperrors.NewValidationError("renderer", err.Error())
		}
		p.Renderer = r
	}
	for _, assignment := range f.flags {
		name, value, err := parseFlagAssignment(assignment)
		if err != nil {
			return err
		}
		p.SetFlag(name, value)
	}
	return nil
}

// parseFlagAssignment parses NAME=VALUE or NAME=KIND:VALUE. Without a kind
// the value is inferred: true/false are bools, base-10 numbers are ints.
func parseFlagAssignment(s string) (string, values.FlagValue, error) {
	name, text, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, apperrors.NewValidationError("flag", fmt.Sprintf("expected NAME=VALUE, got %q", s))
	}

	if prefix, rest, found := strings.Cut(text, ":"); found {
		if kind, err := values.ParseFlagKind(prefix); err == nil {
			value, err := values.ParseFlagValue(kind, rest)
			if err != nil {
				return "", nil, apperrors.NewValidationError("flag", err.Error(), name)
			}
			return name, value, nil
		}
	}
	return name, values.InferFlagValue(text), nil
}
