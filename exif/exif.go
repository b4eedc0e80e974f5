// Package exif supplements the generic ifd/ifdtag tree with a handful of
// typed constructors and accessors for the EXIF fields every DNG file
// carries, so a caller doesn't need to hand-build rationals and
// fixed-width date strings for the common case (§7 "A small EXIF helper
// layer", supplemented from original_source/src/exif/mod.rs).
package exif

import (
	"fmt"
	"time"

	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

const dateTimeLayout = "2006:01:02 15:04:05"

func mustTag(name string) ifdtag.Tag {
	tag, err := ifdtag.FromName(name, ifdtag.Exif)
	if err != nil {
		panic(err)
	}
	return tag
}

var (
	exposureTimeTag    = mustTag("ExposureTime")
	fNumberTag         = mustTag("FNumber")
	isoSpeedRatingsTag = mustTag("ISOSpeedRatings")
	dateTimeOriginalTag = mustTag("DateTimeOriginal")
)

// ExposureTimeEntry builds an ExposureTime entry from a duration in
// seconds, approximating it as a rational (§4.8 step 5's continued-
// fraction algorithm, shared via ifd.ApproxRational).
func ExposureTimeEntry(seconds float64) ifd.Entry {
	num, den := ifd.ApproxRational(seconds)
	return ifd.Entry{Tag: exposureTimeTag, Value: ifd.RationalValue(uint32(num), uint32(den))}
}

// ExposureTime reads the ExposureTime entry of an Exif-namespace tree, if
// present.
func ExposureTime(tree *ifd.IFD) (seconds float64, ok bool) {
	e, found := tree.Get(exposureTimeTag.Number())
	if !found {
		return 0, false
	}
	return e.Value.AsF64()
}

// FNumberEntry builds an FNumber entry from an f-stop value.
func FNumberEntry(fstop float64) ifd.Entry {
	num, den := ifd.ApproxRational(fstop)
	return ifd.Entry{Tag: fNumberTag, Value: ifd.RationalValue(uint32(num), uint32(den))}
}

// FNumber reads the FNumber entry of an Exif-namespace tree, if present.
func FNumber(tree *ifd.IFD) (fstop float64, ok bool) {
	e, found := tree.Get(fNumberTag.Number())
	if !found {
		return 0, false
	}
	return e.Value.AsF64()
}

// ISOSpeedRatingsEntry builds an ISOSpeedRatings entry from one or more
// ISO values (the field's count is AnyCount, §4.2; at least one value is
// needed, since ifd.ListValue rejects an empty list).
func ISOSpeedRatingsEntry(values ...uint16) (ifd.Entry, error) {
	elems := make([]ifd.Value, len(values))
	for i, v := range values {
		elems[i] = ifd.ShortValue(v)
	}
	v, err := ifd.ListValue(elems)
	if err != nil {
		return ifd.Entry{}, err
	}
	return ifd.Entry{Tag: isoSpeedRatingsTag, Value: v}, nil
}

// ISOSpeedRatings reads the ISOSpeedRatings entry of an Exif-namespace
// tree, if present.
func ISOSpeedRatings(tree *ifd.IFD) ([]uint16, bool) {
	e, found := tree.Get(isoSpeedRatingsTag.Number())
	if !found {
		return nil, false
	}
	list := e.Value.AsList()
	out := make([]uint16, len(list))
	for i, elem := range list {
		v, ok := elem.Short()
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// DateTimeOriginalEntry builds a DateTimeOriginal entry from t, formatted
// per the TIFF/EXIF "YYYY:MM:DD HH:MM:SS" convention. The field's fixed
// count of 20 (§4.2) is the 19-character string plus its wire NUL
// terminator, which ifd.AsciiValue's Count() already accounts for.
func DateTimeOriginalEntry(t time.Time) ifd.Entry {
	return ifd.Entry{Tag: dateTimeOriginalTag, Value: ifd.AsciiValue(t.Format(dateTimeLayout))}
}

// DateTimeOriginal reads and parses the DateTimeOriginal entry of an
// Exif-namespace tree, if present and well-formed.
func DateTimeOriginal(tree *ifd.IFD) (time.Time, bool) {
	e, found := tree.Get(dateTimeOriginalTag.Number())
	if !found {
		return time.Time{}, false
	}
	s, ok := e.Value.Ascii()
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// String renders a human-readable summary of the common Exif fields
// present in tree, skipping any that are absent.
func String(tree *ifd.IFD) string {
	var parts []string
	if v, ok := ExposureTime(tree); ok {
		parts = append(parts, fmt.Sprintf("exposure=%gs", v))
	}
	if v, ok := FNumber(tree); ok {
		parts = append(parts, fmt.Sprintf("f/%.1f", v))
	}
	if v, ok := ISOSpeedRatings(tree); ok {
		parts = append(parts, fmt.Sprintf("ISO%v", v))
	}
	if t, ok := DateTimeOriginal(tree); ok {
		parts = append(parts, t.Format(dateTimeLayout))
	}
	return fmt.Sprint(parts)
}
