package values

import (
	"fmt"
	"strconv"
	"strings"
)

// FlagKind tags which payload a FlagValue carries.
type FlagKind uint8

const (
	FlagKindString FlagKind = iota + 1
	FlagKindInt
	FlagKindBool
)

func (k FlagKind) String() string {
	switch k {
	case FlagKindString:
		return "string"
	case FlagKindInt:
		return "int"
	case FlagKindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseFlagKind accepts "string", "int" or "bool".
func ParseFlagKind(s string) (FlagKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str", "text":
		return FlagKindString, nil
	case "int", "number", "integer":
		return FlagKindInt, nil
	case "bool", "boolean":
		return FlagKindBool, nil
	default:
		return 0, fmt.Errorf("invalid flag kind: %s", s)
	}
}

// FlagValue is the override value of a single feature flag.
// The set of implementations is closed: StringFlag, IntFlag and BoolFlag.
type FlagValue interface {
	Kind() FlagKind
	String() string
	// Native returns the payload as a plain Go value (string, int64 or bool).
	Native() any

	isFlagValue()
}

// StringFlag is a text flag value.
type StringFlag string

// IntFlag is a 64-bit signed integer flag value.
type IntFlag int64

// BoolFlag is a boolean flag value.
type BoolFlag bool

func (StringFlag) Kind() FlagKind { return FlagKindString }
func (IntFlag) Kind() FlagKind    { return FlagKindInt }
func (BoolFlag) Kind() FlagKind   { return FlagKindBool }

func (s StringFlag) String() string { return string(s) }
func (i IntFlag) String() string    { return strconv.FormatInt(int64(i), 10) }
func (b BoolFlag) String() string   { return strconv.FormatBool(bool(b)) }

func (s StringFlag) Native() any { return string(s) }
func (i IntFlag) Native() any    { return int64(i) }
func (b BoolFlag) Native() any   { return bool(b) }

func (StringFlag) isFlagValue() {}
func (IntFlag) isFlagValue()    {}
func (BoolFlag) isFlagValue()   {}

// ParseFlagValue parses text as a value of the given kind.
func ParseFlagValue(kind FlagKind, text string) (FlagValue, error) {
	switch kind {
	case FlagKindString:
		return StringFlag(text), nil
	case FlagKindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int flag value %q: %w", text, err)
		}
		return IntFlag(n), nil
	case FlagKindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("invalid bool flag value %q: %w", text, err)
		}
		return BoolFlag(b), nil
	default:
		return nil, fmt.Errorf("invalid flag kind: %d", uint8(kind))
	}
}

// InferFlagValue picks the narrowest kind that parses: "true"/"false" become
// BoolFlag, base-10 integers become IntFlag, anything else is a StringFlag.
func InferFlagValue(text string) FlagValue {
	switch text {
	case "true":
		return BoolFlag(true)
	case "false":
		return BoolFlag(false)
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return IntFlag(n)
	}
	return StringFlag(text)
}
