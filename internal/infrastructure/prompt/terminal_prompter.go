// Package prompt gathers profile fields from an operator at the terminal.
package prompt

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/application/ports"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/values"
)

// Ensure interface compliance
var _ ports.ProfilePrompter = (*TerminalPrompter)(nil)

// TerminalPrompter provides interactive terminal prompting backed by huh forms.
type TerminalPrompter struct {
	// Accessible switches huh to plain line-based prompts (screen readers, dumb terminals).
	Accessible bool
}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Character device (terminal), not a pipe or file
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PromptProfile asks for name, variant and render backend. The fields of
// draft are the preselected answers; its flags are kept as they are.
func (p *TerminalPrompter) PromptProfile(draft entities.Profile) (entities.Profile, error) {
	out := draft.Clone()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Profile name").
				Value(&out.Name).
				Validate(ValidateName),
			huh.NewSelect[values.ApplicationVariant]().
				Title("Select Roblox type").
				Options(variantOptions()...).
				Value(&out.Variant),
			huh.NewSelect[values.RenderBackend]().
				Title("Select render backend").
				Options(rendererOptions()...).
				Value(&out.Renderer),
		),
	).WithAccessible(p.Accessible)

	if err := form.Run(); err != nil {
		return entities.Profile{}, err
	}
	out.Name = strings.TrimSpace(out.Name)
	return out, nil
}

// Confirm asks a yes/no question, defaulting to no.
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithAccessible(p.Accessible).Run()
	return ok, err
}

// ValidateName rejects blank profile names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name", "cannot be empty")
	}
	return nil
}

func variantOptions() []huh.Option[values.ApplicationVariant] {
	variants := values.AllApplicationVariants()
	opts := make([]huh.Option[values.ApplicationVariant], 0, len(variants))
	for _, v := range variants {
		opts = append(opts, huh.NewOption(v.DisplayName(), v))
	}
	return opts
}

func rendererOptions() []huh.Option[values.RenderBackend] {
	backends := values.AllRenderBackends()
	opts := make([]huh.Option[values.RenderBackend], 0, len(backends))
	for _, r := range backends {
		opts = append(opts, huh.NewOption(r.DisplayName(), r))
	}
	return opts
}
