package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yarwhq/yarw/internal/application/dto"
	"github.com/yarwhq/yarw/internal/application/ports"
)

// OutputOptions contains the flags of commands that print profiles.
type OutputOptions struct {
	Format string

	// Flags (bools grouped for alignment)
	Compact bool
	Color   bool
}

// DefaultOutputOptions returns sensible defaults.
func DefaultOutputOptions() OutputOptions {
	return OutputOptions{
		Format: "table",
	}
}

// RegisterFlags adds the output flags to a cobra command.
func (opts *OutputOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.Format, "format", "o", opts.Format,
		"Output format: table, json, yaml")
	cmd.Flags().BoolVar(&opts.Compact, "compact", opts.Compact,
		"Print JSON on a single line")
	cmd.Flags().BoolVar(&opts.Color, "color", opts.Color,
		"Colorize table output")
}

// ValidateFlags validates output options against the supported formats.
func (opts *OutputOptions) ValidateFlags(supported []string) error {
	if !slices.Contains(supported, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", opts.Format, strings.Join(supported, ", "))
	}
	if opts.Compact && opts.Format != "json" {
		return fmt.Errorf("--compact only applies to --format json")
	}
	return nil
}

// render writes views through the formatter selected by opts.
func (opts *OutputOptions) render(factory ports.OutputFormatterFactory, w io.Writer, views []dto.ProfileView) error {
	if err := opts.ValidateFlags(factory.SupportedFormats()); err != nil {
		return err
	}
	formatter, err := factory.Create(opts.Format, w, ports.FormatterOptions{
		Indent: !opts.Compact,
		Color:  opts.Color,
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(views); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
