// Package codec converts a ProfileSet to and from its binary snapshot form.
//
// The snapshot uses the protocol buffers wire format, written by hand with
// protowire (no generated code). Every value is tagged with its field number
// and wire type, so the flag value variants are distinguishable on the wire
// and unknown fields can be skipped. The schema, in .proto terms:
//
//	message Snapshot { uint32 version = 1; repeated Entry entries = 2; Defaults defaults = 3; }
//	message Entry    { bytes id = 1; Profile profile = 2; }
//	message Profile  { string name = 1; uint32 variant = 2; uint32 renderer = 3; repeated Flag flags = 4; }
//	message Flag     { string name = 1; oneof value { string text = 2; sint64 int = 3; bool bool = 4; } }
//	message Defaults { string wineroot_path = 1; }
//
// Encoding is deterministic: entries are sorted by the text form of the ID and
// flags by name, so equal sets always produce identical bytes.
package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/values"
)

// FormatVersion is written into every snapshot. Decode rejects newer versions.
const FormatVersion = 1

const (
	snapshotVersion  protowire.Number = 1
	snapshotEntry    protowire.Number = 2
	snapshotDefaults protowire.Number = 3

	entryID      protowire.Number = 1
	entryProfile protowire.Number = 2

	profileName     protowire.Number = 1
	profileVariant  protowire.Number = 2
	profileRenderer protowire.Number = 3
	profileFlag     protowire.Number = 4

	flagName   protowire.Number = 1
	flagString protowire.Number = 2
	flagInt    protowire.Number = 3
	flagBool   protowire.Number = 4

	defaultsWineroot protowire.Number = 1
)

// Encode serializes the whole set. It fails only when a profile holds a value
// outside its closed set (unknown variant, nil flag value, ...). Names and
// string values are written as raw bytes and may be empty or invalid UTF-8.
func Encode(set *entities.ProfileSet) ([]byte, error) {
	b := protowire.AppendTag(nil, snapshotVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, FormatVersion)

	for _, id := range set.SortedIDs() {
		entry, err := encodeEntry(id, set.Profiles[id])
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, snapshotEntry, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}

	if set.Defaults != (entities.Defaults{}) {
		b = protowire.AppendTag(b, snapshotDefaults, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeDefaults(set.Defaults))
	}
	return b, nil
}

func encodeEntry(id values.ProfileID, p entities.Profile) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, apperrors.NewCodecError(0, "cannot encode profile "+id.String(), err)
	}

	var prof []byte
	prof = protowire.AppendTag(prof, profileName, protowire.BytesType)
	prof = protowire.AppendString(prof, p.Name)
	prof = protowire.AppendTag(prof, profileVariant, protowire.VarintType)
	prof = protowire.AppendVarint(prof, uint64(p.Variant))
	prof = protowire.AppendTag(prof, profileRenderer, protowire.VarintType)
	prof = protowire.AppendVarint(prof, uint64(p.Renderer))
	for _, name := range p.FlagNames() {
		prof = protowire.AppendTag(prof, profileFlag, protowire.BytesType)
		prof = protowire.AppendBytes(prof, encodeFlag(name, p.Flags[name]))
	}

	var b []byte
	b = protowire.AppendTag(b, entryID, protowire.BytesType)
	b = protowire.AppendBytes(b, id.Bytes())
	b = protowire.AppendTag(b, entryProfile, protowire.BytesType)
	b = protowire.AppendBytes(b, prof)
	return b, nil
}

// encodeFlag expects a validated, non-nil value.
func encodeFlag(name string, value values.FlagValue) []byte {
	b := protowire.AppendTag(nil, flagName, protowire.BytesType)
	b = protowire.AppendString(b, name)

	switch v := value.(type) {
	case values.StringFlag:
		b = protowire.AppendTag(b, flagString, protowire.BytesType)
		b = protowire.AppendString(b, string(v))
	case values.IntFlag:
		b = protowire.AppendTag(b, flagInt, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
	case values.BoolFlag:
		b = protowire.AppendTag(b, flagBool, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(bool(v)))
	}
	return b
}

func encodeDefaults(d entities.Defaults) []byte {
	b := protowire.AppendTag(nil, defaultsWineroot, protowire.BytesType)
	return protowire.AppendString(b, d.WinerootPath)
}

// Decode parses a snapshot produced by Encode. Empty input is an empty set.
// Any malformed input yields a *apperrors.CodecError.
func Decode(data []byte) (*entities.ProfileSet, error) {
	set := entities.NewProfileSet()
	if len(data) == 0 {
		return set, nil
	}

	sawVersion := false
	err := walk(data, 0, func(f field) error {
		switch f.num {
		case snapshotVersion:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			if f.varint == 0 || f.varint > FormatVersion {
				return apperrors.NewCodecError(f.offset, fmt.Sprintf("unsupported format version %d", f.varint), nil)
			}
			sawVersion = true
		case snapshotEntry:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			id, p, err := decodeEntry(f.bytes, f.offset)
			if err != nil {
				return err
			}
			if _, dup := set.Profiles[id]; dup {
				return apperrors.NewCodecError(f.offset, "duplicate entry", &entities.DuplicateProfileError{ID: id})
			}
			set.Profiles[id] = p
		case snapshotDefaults:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			d, err := decodeDefaults(f.bytes, f.offset)
			if err != nil {
				return err
			}
			set.Defaults = d
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !sawVersion {
		return nil, apperrors.NewCodecError(0, "missing format version", nil)
	}
	return set, nil
}

func decodeEntry(buf []byte, base int) (values.ProfileID, entities.Profile, error) {
	var (
		id         values.ProfileID
		p          entities.Profile
		sawID      bool
		sawProfile bool
	)
	err := walk(buf, base, func(f field) error {
		switch f.num {
		case entryID:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			parsed, err := values.ProfileIDFromBytes(f.bytes)
			if err != nil {
				return apperrors.NewCodecError(f.offset, "invalid profile id", err)
			}
			id, sawID = parsed, true
		case entryProfile:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			decoded, err := decodeProfile(f.bytes, f.offset)
			if err != nil {
				return err
			}
			p, sawProfile = decoded, true
		}
		return nil
	})
	if err != nil {
		return id, p, err
	}
	if !sawID || !sawProfile {
		return id, p, apperrors.NewCodecError(base, "incomplete entry", nil)
	}
	return id, p, nil
}

func decodeProfile(buf []byte, base int) (entities.Profile, error) {
	p := entities.NewProfile("")
	err := walk(buf, base, func(f field) error {
		switch f.num {
		case profileName:
			name, err := f.text()
			if err != nil {
				return err
			}
			p.Name = name
		case profileVariant:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			v := values.ApplicationVariant(f.varint)
			if f.varint > 0xff || v.Validate() != nil {
				return apperrors.NewCodecError(f.offset, fmt.Sprintf("unknown application variant %d", f.varint), nil)
			}
			p.Variant = v
		case profileRenderer:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			r := values.RenderBackend(f.varint)
			if f.varint > 0xff || r.Validate() != nil {
				return apperrors.NewCodecError(f.offset, fmt.Sprintf("unknown render backend %d", f.varint), nil)
			}
			p.Renderer = r
		case profileFlag:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			name, value, err := decodeFlag(f.bytes, f.offset)
			if err != nil {
				return err
			}
			if _, dup := p.Flags[name]; dup {
				return apperrors.NewCodecError(f.offset, fmt.Sprintf("duplicate feature flag %q", name), nil)
			}
			p.Flags[name] = value
		}
		return nil
	})
	return p, err
}

func decodeFlag(buf []byte, base int) (string, values.FlagValue, error) {
	var (
		name    string
		sawName bool
		value   values.FlagValue
		count   int
	)
	err := walk(buf, base, func(f field) error {
		switch f.num {
		case flagName:
			text, err := f.text()
			if err != nil {
				return err
			}
			name, sawName = text, true
		case flagString:
			text, err := f.text()
			if err != nil {
				return err
			}
			value = values.StringFlag(text)
			count++
		case flagInt:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			value = values.IntFlag(protowire.DecodeZigZag(f.varint))
			count++
		case flagBool:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			if f.varint > 1 {
				return apperrors.NewCodecError(f.offset, fmt.Sprintf("invalid bool %d", f.varint), nil)
			}
			value = values.BoolFlag(protowire.DecodeBool(f.varint))
			count++
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	if !sawName {
		return "", nil, apperrors.NewCodecError(base, "feature flag without a name", nil)
	}
	if count != 1 {
		return "", nil, apperrors.NewCodecError(base, fmt.Sprintf("feature flag %q carries %d values", name, count), nil)
	}
	return name, value, nil
}

func decodeDefaults(buf []byte, base int) (entities.Defaults, error) {
	var d entities.Defaults
	err := walk(buf, base, func(f field) error {
		if f.num == defaultsWineroot {
			text, err := f.text()
			if err != nil {
				return err
			}
			d.WinerootPath = text
		}
		return nil
	})
	return d, err
}

// field is one decoded tag/value pair. offset is the absolute position of the
// value (for bytes, of the payload after the length prefix).
type field struct {
	bytes  []byte
	varint uint64
	offset int
	num    protowire.Number
	typ    protowire.Type
}

func (f field) expect(typ protowire.Type) error {
	if f.typ != typ {
		return apperrors.NewCodecError(f.offset, fmt.Sprintf("field %d has wire type %d, want %d", f.num, f.typ, typ), nil)
	}
	return nil
}

// text returns the payload as a string. Bytes are kept as they are, valid
// UTF-8 or not, so every Go string written by Encode reads back unchanged.
func (f field) text() (string, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return "", err
	}
	return string(f.bytes), nil
}

// walk visits every varint and length-delimited field of buf in order.
// Fields of other wire types are skipped, as protobuf does for unknown fields.
func walk(buf []byte, base int, visit func(field) error) error {
	for pos := 0; pos < len(buf); {
		num, typ, n := protowire.ConsumeTag(buf[pos:])
		if n < 0 {
			return apperrors.NewCodecError(base+pos, "invalid field tag", protowire.ParseError(n))
		}
		pos += n

		f := field{num: num, typ: typ, offset: base + pos}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf[pos:])
			if n < 0 {
				return apperrors.NewCodecError(base+pos, fmt.Sprintf("invalid varint in field %d", num), protowire.ParseError(n))
			}
			f.varint = v
			pos += n
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(buf[pos:])
			if n < 0 {
				return apperrors.NewCodecError(base+pos, fmt.Sprintf("truncated field %d", num), protowire.ParseError(n))
			}
			f.bytes = v
			f.offset = base + pos + n - len(v)
			pos += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf[pos:])
			if n < 0 {
				return apperrors.NewCodecError(base+pos, fmt.Sprintf("invalid field %d", num), protowire.ParseError(n))
			}
			pos += n
			continue
		}

		if err := visit(f); err != nil {
			return err
		}
	}
	return nil
}
