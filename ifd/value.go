package ifd

import (
	"fmt"
	"io"

	"github.com/jrm-1535/dng/ifdtag"
)

// Kind discriminates the variants of Value: the twelve TIFF primitives,
// using the same numbering as ifdtag.ValueType's wire code, plus three
// composite variants that never appear on the wire as their own type code.
type Kind int

const (
	KindByte           = Kind(ifdtag.Byte)
	KindAscii          = Kind(ifdtag.Ascii)
	KindShort          = Kind(ifdtag.Short)
	KindLong           = Kind(ifdtag.Long)
	KindRational       = Kind(ifdtag.Rational)
	KindSignedByte     = Kind(ifdtag.SignedByte)
	KindUndefined      = Kind(ifdtag.Undefined)
	KindSignedShort    = Kind(ifdtag.SignedShort)
	KindSignedLong     = Kind(ifdtag.SignedLong)
	KindSignedRational = Kind(ifdtag.SignedRational)
	KindFloat          = Kind(ifdtag.Float)
	KindDouble         = Kind(ifdtag.Double)

	// KindList, KindIfd and KindOffsets have no wire type code of their
	// own: a List collapses to its element type, an Ifd or Offsets both
	// collapse to Long, per ifd_value_type (§4.3).
	KindList Kind = 1000 + iota
	KindIfd
	KindOffsets
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "List"
	case KindIfd:
		return "Ifd"
	case KindOffsets:
		return "Offsets"
	default:
		return ifdtag.ValueType(k).String()
	}
}

// Rational is an unsigned numerator/denominator pair. The denominator is
// never implicitly normalized (§3 invariant 4).
type Rational struct{ Num, Den uint32 }

// SignedRational is the signed counterpart of Rational.
type SignedRational struct{ Num, Den int32 }

// Offsets is a writer-only value variant: an opaque producer of bytes
// emitted out-of-line by the write planner, whose resulting file offset
// becomes the referring entry's on-wire value (§3 invariant 5). The
// reader never produces one.
type Offsets struct {
	Size  uint32
	Write func(w io.Writer) error
}

// Value is the recursive tagged union over the twelve TIFF primitives plus
// List, Ifd and Offsets. The zero Value is not meaningful; always build
// one through a constructor below.
type Value struct {
	kind Kind

	u8   uint8
	i8   int8
	u16  uint16
	i16  int16
	u32  uint32
	i32  int32
	f32  float32
	f64  float64
	rat  Rational
	srat SignedRational
	str  string

	list []Value
	ifd  *IFD
	offs *Offsets
}

func ByteValue(v uint8) Value          { return Value{kind: KindByte, u8: v} }
func AsciiValue(s string) Value        { return Value{kind: KindAscii, str: s} }
func ShortValue(v uint16) Value        { return Value{kind: KindShort, u16: v} }
func LongValue(v uint32) Value         { return Value{kind: KindLong, u32: v} }
func RationalValue(num, den uint32) Value {
	return Value{kind: KindRational, rat: Rational{Num: num, Den: den}}
}
func SignedByteValue(v int8) Value  { return Value{kind: KindSignedByte, i8: v} }
func UndefinedValue(v uint8) Value  { return Value{kind: KindUndefined, u8: v} }
func SignedShortValue(v int16) Value { return Value{kind: KindSignedShort, i16: v} }
func SignedLongValue(v int32) Value  { return Value{kind: KindSignedLong, i32: v} }
func SignedRationalValue(num, den int32) Value {
	return Value{kind: KindSignedRational, srat: SignedRational{Num: num, Den: den}}
}
func FloatValue(v float32) Value  { return Value{kind: KindFloat, f32: v} }
func DoubleValue(v float64) Value { return Value{kind: KindDouble, f64: v} }

// ListValue builds a List value. It is an error (§3 invariant 2) for elems
// to be empty or to mix primitive types. IfdValue/OffsetsValue elements
// are accepted and count as Long (see PrimitiveType), so a list of nested
// IFDs, as the reader builds for a multi-valued IfdOffset entry, is valid;
// the writer checks the element types again at emit time (§5, "Safety").
func ListValue(elems []Value) (Value, error) {
	if len(elems) == 0 {
		return Value{}, NewError(Format, "list value must have at least one element")
	}
	want := elems[0].PrimitiveType()
	for i, e := range elems[1:] {
		if e.PrimitiveType() != want {
			return Value{}, NewError(Format, "list element %d has type %s, want %s", i+1, e.PrimitiveType(), want)
		}
	}
	return Value{kind: KindList, list: append([]Value(nil), elems...)}, nil
}

// MustListValue is ListValue for callers that already know the elements
// are homogeneous (e.g. decoders that just produced them).
func MustListValue(elems []Value) Value {
	v, err := ListValue(elems)
	if err != nil {
		panic(err)
	}
	return v
}

// IfdValue wraps a nested IFD, e.g. the value of an ExifTag/GPSTag entry.
func IfdValue(sub *IFD) Value { return Value{kind: KindIfd, ifd: sub} }

// OffsetsValue wraps a writer-only offset payload.
func OffsetsValue(o *Offsets) Value { return Value{kind: KindOffsets, offs: o} }

func (v Value) Kind() Kind { return v.kind }

// PrimitiveType collapses v to the primitive type it occupies on the wire:
// a List collapses to its element type, and both Ifd and Offsets collapse
// to Long, since both are 32-bit pointers at emit time (§4.3).
func (v Value) PrimitiveType() ifdtag.ValueType {
	switch v.kind {
	case KindList:
		if len(v.list) == 0 {
			return 0
		}
		return v.list[0].PrimitiveType()
	case KindIfd, KindOffsets:
		return ifdtag.Long
	default:
		return ifdtag.ValueType(v.kind)
	}
}

// Count is 1 for scalars, the element count for List, and
// character-length+1 for Ascii (§4.3).
func (v Value) Count() uint32 {
	switch v.kind {
	case KindList:
		return uint32(len(v.list))
	case KindAscii:
		return uint32(len(v.str)) + 1
	default:
		return 1
	}
}

// AsList always returns a slice: the single element for a scalar, or the
// elements for a List (§4.3).
func (v Value) AsList() []Value {
	if v.kind == KindList {
		return v.list
	}
	return []Value{v}
}

// AsU32 reports the value as a uint32, valid only for integral primitives.
func (v Value) AsU32() (uint32, bool) {
	switch v.kind {
	case KindByte, KindUndefined:
		return uint32(v.u8), true
	case KindSignedByte:
		return uint32(v.i8), true
	case KindShort:
		return uint32(v.u16), true
	case KindSignedShort:
		return uint32(v.i16), true
	case KindLong:
		return v.u32, true
	case KindSignedLong:
		return uint32(v.i32), true
	default:
		return 0, false
	}
}

// AsF64 reports the value as a float64; defined for rationals, floats, and
// integral primitives (§4.3).
func (v Value) AsF64() (float64, bool) {
	switch v.kind {
	case KindByte, KindUndefined:
		return float64(v.u8), true
	case KindSignedByte:
		return float64(v.i8), true
	case KindShort:
		return float64(v.u16), true
	case KindSignedShort:
		return float64(v.i16), true
	case KindLong:
		return float64(v.u32), true
	case KindSignedLong:
		return float64(v.i32), true
	case KindRational:
		if v.rat.Den == 0 {
			return 0, false
		}
		return float64(v.rat.Num) / float64(v.rat.Den), true
	case KindSignedRational:
		if v.srat.Den == 0 {
			return 0, false
		}
		return float64(v.srat.Num) / float64(v.srat.Den), true
	case KindFloat:
		return float64(v.f32), true
	case KindDouble:
		return v.f64, true
	default:
		return 0, false
	}
}

func (v Value) Byte() (uint8, bool) {
	if v.kind == KindByte {
		return v.u8, true
	}
	return 0, false
}

func (v Value) SignedByte() (int8, bool) {
	if v.kind == KindSignedByte {
		return v.i8, true
	}
	return 0, false
}

func (v Value) Undefined() (uint8, bool) {
	if v.kind == KindUndefined {
		return v.u8, true
	}
	return 0, false
}

func (v Value) Short() (uint16, bool) {
	if v.kind == KindShort {
		return v.u16, true
	}
	return 0, false
}

func (v Value) SignedShort() (int16, bool) {
	if v.kind == KindSignedShort {
		return v.i16, true
	}
	return 0, false
}

func (v Value) Long() (uint32, bool) {
	if v.kind == KindLong {
		return v.u32, true
	}
	return 0, false
}

func (v Value) SignedLong() (int32, bool) {
	if v.kind == KindSignedLong {
		return v.i32, true
	}
	return 0, false
}

func (v Value) Rational() (Rational, bool) {
	if v.kind == KindRational {
		return v.rat, true
	}
	return Rational{}, false
}

func (v Value) SignedRational() (SignedRational, bool) {
	if v.kind == KindSignedRational {
		return v.srat, true
	}
	return SignedRational{}, false
}

func (v Value) Ascii() (string, bool) {
	if v.kind == KindAscii {
		return v.str, true
	}
	return "", false
}

func (v Value) Float() (float32, bool) {
	if v.kind == KindFloat {
		return v.f32, true
	}
	return 0, false
}

func (v Value) Double() (float64, bool) {
	if v.kind == KindDouble {
		return v.f64, true
	}
	return 0, false
}

// Ifd returns the nested IFD wrapped by a KindIfd value.
func (v Value) Ifd() (*IFD, bool) {
	if v.kind == KindIfd {
		return v.ifd, true
	}
	return nil, false
}

// OffsetsPayload returns the writer-only payload wrapped by a KindOffsets
// value.
func (v Value) OffsetsPayload() (*Offsets, bool) {
	if v.kind == KindOffsets {
		return v.offs, true
	}
	return nil, false
}

func (v Value) String() string {
	switch v.kind {
	case KindAscii:
		return v.str
	case KindRational:
		return fmt.Sprintf("%d/%d", v.rat.Num, v.rat.Den)
	case KindSignedRational:
		return fmt.Sprintf("%d/%d", v.srat.Num, v.srat.Den)
	case KindList:
		return fmt.Sprintf("%v", v.list)
	case KindIfd:
		return "<ifd>"
	case KindOffsets:
		return "<offsets>"
	default:
		if u, ok := v.AsU32(); ok {
			return fmt.Sprintf("%d", u)
		}
		if f, ok := v.AsF64(); ok {
			return fmt.Sprintf("%g", f)
		}
		return "<invalid>"
	}
}
