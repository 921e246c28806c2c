package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/yarwhq/yarw/internal/application/dto"
)

// YAMLFormatter formats profiles as a YAML sequence.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the profiles as YAML.
func (f *YAMLFormatter) Format(profiles []dto.ProfileView) error {
	if profiles == nil {
		profiles = []dto.ProfileView{}
	}
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(profiles); err != nil {
		return err
	}

	return encoder.Close()
}
