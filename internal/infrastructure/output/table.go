package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yarwhq/yarw/internal/application/dto"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// TableFormatter formats profiles as an aligned, human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter with color disabled.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes one row per profile.
func (f *TableFormatter) Format(profiles []dto.ProfileView) error {
	if len(profiles) == 0 {
		_, err := fmt.Fprintln(f.writer, "No profiles found.")
		return err
	}

	w := tabwriter.NewWriter(f.writer, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tVARIANT\tRENDERER\tFLAGS"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range profiles {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			f.colorize(p.ID, colorGray),
			f.colorize(p.Name, colorBold),
			p.Variant,
			p.Renderer,
			flagSummary(p.Flags),
		); err != nil {
			return fmt.Errorf("failed to write profile %s: %w", p.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}
	return nil
}

func flagSummary(flags []dto.FlagView) string {
	if len(flags) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(flags))
	for _, fl := range flags {
		value := fmt.Sprint(fl.Value)
		if fl.Kind == "string" {
			value = fmt.Sprintf("%q", fl.Value)
		}
		parts = append(parts, fl.Name+"="+value)
	}
	return strings.Join(parts, ", ")
}
