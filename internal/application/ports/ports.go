// Package ports defines interfaces the application layer needs from the outside.
// Infrastructure provides the implementations.
package ports

import (
	"io"

	"github.com/yarwhq/yarw/internal/application/dto"
	"github.com/yarwhq/yarw/internal/domain/entities"
)

// OutputFormatter renders profile views.
type OutputFormatter interface {
	Format(profiles []dto.ProfileView) error
}

// FormatterOptions tune a formatter created by an OutputFormatterFactory.
type FormatterOptions struct {
	Indent bool // JSON only
	Color  bool // table only
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}

// ProfilePrompter asks an operator for the fields of a profile.
type ProfilePrompter interface {
	// IsInteractive reports whether prompting is possible at all.
	IsInteractive() bool

	// PromptProfile fills in the fields of draft, which carries the defaults.
	PromptProfile(draft entities.Profile) (entities.Profile, error)

	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
}
