package output

import (
	"encoding/json"
	"io"

	"github.com/yarwhq/yarw/internal/application/dto"
)

// JSONFormatter formats profiles as a JSON array.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the profiles as JSON followed by a newline.
func (f *JSONFormatter) Format(profiles []dto.ProfileView) error {
	if profiles == nil {
		profiles = []dto.ProfileView{}
	}
	enc := json.NewEncoder(f.writer)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(profiles)
}
