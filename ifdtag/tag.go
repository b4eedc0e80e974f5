// Package ifdtag holds the static catalog of known TIFF/EXIF/GPS/DNG tags.
//
// The catalog is organized as three disjoint namespaces (Root, Exif, Gps),
// each a table of field descriptors generated from the JSON sources under
// internal/tagdata by cmd/gentagdata. The tables themselves live in
// tables_generated.go and are immutable for the life of the process.
package ifdtag

import "fmt"

// Namespace selects which of the three disjoint tag dictionaries a Tag
// belongs to.
type Namespace int

const (
	Root Namespace = iota
	Exif
	Gps
)

func (n Namespace) String() string {
	switch n {
	case Root:
		return "Root"
	case Exif:
		return "Exif"
	case Gps:
		return "Gps"
	default:
		return fmt.Sprintf("Namespace(%d)", int(n))
	}
}

// ValueType enumerates the twelve TIFF primitive value types a field
// descriptor can declare as acceptable, using the same wire-order numbering
// as the on-disk type code (§4.6 of the spec).
type ValueType int

const (
	Byte ValueType = iota + 1
	Ascii
	Short
	Long
	Rational
	SignedByte
	Undefined
	SignedShort
	SignedLong
	SignedRational
	Float
	Double
)

var valueTypeNames = [...]string{
	Byte:           "BYTE",
	Ascii:          "ASCII",
	Short:          "SHORT",
	Long:           "LONG",
	Rational:       "RATIONAL",
	SignedByte:     "SBYTE",
	Undefined:      "UNDEFINED",
	SignedShort:    "SSHORT",
	SignedLong:     "SLONG",
	SignedRational: "SRATIONAL",
	Float:          "FLOAT",
	Double:         "DOUBLE",
}

func (t ValueType) String() string {
	if int(t) >= 0 && int(t) < len(valueTypeNames) && valueTypeNames[t] != "" {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Size returns the on-wire size in bytes of one element of this type.
func (t ValueType) Size() uint32 {
	switch t {
	case Byte, Ascii, SignedByte, Undefined:
		return 1
	case Short, SignedShort:
		return 2
	case Long, SignedLong, Float:
		return 4
	case Rational, SignedRational, Double:
		return 8
	default:
		panic(fmt.Sprintf("ifdtag: ValueType %d has no defined size", int(t)))
	}
}

// WireCode returns the TIFF on-disk type code for this value type (§4.6).
func (t ValueType) WireCode() uint16 {
	return uint16(t)
}

// ValueTypeFromWireCode maps a 16-bit on-disk type code to a ValueType. ok
// is false for any code outside the twelve known primitives.
func ValueTypeFromWireCode(code uint16) (t ValueType, ok bool) {
	if code < uint16(Byte) || code > uint16(Double) {
		return 0, false
	}
	return ValueType(code), true
}

// Count describes the accepted multiplicity of a field: either an exact
// element count, or Any for fields whose count varies by file.
type Count struct {
	N   uint32
	Any bool
}

// Exactly builds a Count requiring exactly n elements.
func Exactly(n uint32) Count { return Count{N: n} }

// AnyCount is the multiplicity accepting any element count.
var AnyCount = Count{Any: true}

func (c Count) String() string {
	if c.Any {
		return "N"
	}
	return fmt.Sprintf("%d", c.N)
}

// Matches reports whether n is an acceptable element count for c.
func (c Count) Matches(n uint32) bool {
	if c.Any {
		return true
	}
	return c.N == n
}

// IfdType names which namespace a sub-IFD pointed to by an IfdOffset tag
// should be read/written in.
type IfdType = Namespace

// Interpretation describes how a numeric/bit-pattern value should be
// presented to a human, or how a tag's value relates to another tag in the
// same IFD (§4.2).
type Interpretation struct {
	Kind InterpretationKind

	// Enumerated / Bitflags
	Values []EnumValue

	// IfdOffset
	IfdType IfdType

	// Offsets
	LengthsTagName string
}

// InterpretationKind discriminates the variants of Interpretation.
type InterpretationKind int

const (
	Default InterpretationKind = iota
	Enumerated
	Bitflags
	CfaPattern
	IfdOffset
	Offsets
	Lengths
	Blob
)

// EnumValue is one (numeric value, label) pair of an Enumerated or Bitflags
// interpretation. For Bitflags, Value is the bit index, not a bitmask.
type EnumValue struct {
	Value uint32
	Label string
}

// Lookup finds the label for a numeric value in an Enumerated interpretation,
// searching linearly as §4.7 specifies.
func (in Interpretation) Lookup(v uint32) (string, bool) {
	for _, e := range in.Values {
		if e.Value == v {
			return e.Label, true
		}
	}
	return "", false
}

// Descriptor is a statically known tag definition: immutable for the life of
// the process, shared by pointer across every Tag referencing it.
type Descriptor struct {
	Name            string
	Number          uint16
	Namespace       Namespace
	Types           []ValueType
	Count           Count
	Interpretation  Interpretation
	Description     string
	LongDescription string
	References      string
}

// AcceptsType reports whether v is one of this descriptor's declared types.
func (d *Descriptor) AcceptsType(v ValueType) bool {
	for _, t := range d.Types {
		if t == v {
			return true
		}
	}
	return false
}

// Tag is the atom of identity in an IFD: either a known field descriptor, or
// an unknown 16-bit tag. Equality is defined on the numeric tag alone.
type Tag struct {
	known *Descriptor
	num   uint16
	ns    Namespace
}

// FromDescriptor wraps a known descriptor as a Tag.
func FromDescriptor(d *Descriptor) Tag {
	return Tag{known: d, num: d.Number, ns: d.Namespace}
}

// Unknown builds a Tag for a numeric tag with no known descriptor.
func Unknown(number uint16, ns Namespace) Tag {
	return Tag{num: number, ns: ns}
}

// Number returns the numeric 16-bit tag, regardless of whether it is known.
func (t Tag) Number() uint16 { return t.num }

// Namespace returns the namespace this tag was looked up or constructed in.
func (t Tag) Namespace() Namespace { return t.ns }

// Known reports whether t resolves to a static field descriptor, and
// returns it.
func (t Tag) Known() (*Descriptor, bool) {
	return t.known, t.known != nil
}

// Name returns the descriptor's name, or a "0xHHHH" rendering (uppercase
// hex, no leading zeros beyond "0x") for an unknown tag, per §4.7.
func (t Tag) Name() string {
	if t.known != nil {
		return t.known.Name
	}
	return fmt.Sprintf("0x%X", t.num)
}

// Interpretation returns the known descriptor's interpretation, or the zero
// value (Default) for an unknown tag.
func (t Tag) Interpretation() Interpretation {
	if t.known != nil {
		return t.known.Interpretation
	}
	return Interpretation{}
}

// Equal compares two tags by numeric value only, per §3 "Tag reference".
func (t Tag) Equal(o Tag) bool { return t.num == o.num }

func (t Tag) String() string { return t.Name() }
