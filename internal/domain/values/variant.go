package values

import (
	"fmt"
	"strings"
)

// ApplicationVariant selects which binary a profile launches.
// The zero value is VariantPlayer.
type ApplicationVariant uint8

const (
	// VariantPlayer launches the player client
	VariantPlayer ApplicationVariant = iota
	// VariantStudio launches the editor
	VariantStudio
)

// AllApplicationVariants lists every variant in declaration order.
func AllApplicationVariants() []ApplicationVariant {
	return []ApplicationVariant{VariantPlayer, VariantStudio}
}

// ParseApplicationVariant converts a name ("player", "studio") into a variant.
// An empty string yields the default variant.
func ParseApplicationVariant(s string) (ApplicationVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "player", "":
		return VariantPlayer, nil
	case "studio":
		return VariantStudio, nil
	default:
		return 0, fmt.Errorf("invalid application variant: %s", s)
	}
}

// String returns the lowercase name of the variant
func (v ApplicationVariant) String() string {
	switch v {
	case VariantPlayer:
		return "player"
	case VariantStudio:
		return "studio"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// DisplayName returns a human readable label.
func (v ApplicationVariant) DisplayName() string {
	switch v {
	case VariantPlayer:
		return "Roblox Player"
	case VariantStudio:
		return "Roblox Studio"
	default:
		return v.String()
	}
}

// Validate returns an error if the variant is outside the closed set
func (v ApplicationVariant) Validate() error {
	switch v {
	case VariantPlayer, VariantStudio:
		return nil
	default:
		return fmt.Errorf("invalid application variant: %d", uint8(v))
	}
}

// MarshalText implements encoding.TextMarshaler
func (v ApplicationVariant) MarshalText() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *ApplicationVariant) UnmarshalText(data []byte) error {
	parsed, err := ParseApplicationVariant(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
