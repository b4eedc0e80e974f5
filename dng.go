// Package dng is the library's façade (C9): header/magic detection, and
// high-level helpers for locating a document's main image data and
// reading its strips, built on top of ifd/ifdtag/dngio/dngyaml (§4.9).
package dng

import (
	"io"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/jrm-1535/dng/biord"
	"github.com/jrm-1535/dng/dngio"
	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

// FileType discriminates the two file types this library recognizes on
// the wire: DNG (raw image + metadata) and DCP (a standalone camera
// color profile), per §4.6/§6's "these are the only two file types".
type FileType int

const (
	Dng FileType = iota
	Dcp
)

// Magic returns the file type's wire-level magic number.
func (t FileType) Magic() uint16 {
	if t == Dcp {
		return dngio.DcpMagic
	}
	return dngio.DngMagic
}

// Extension returns the file type's conventional filename extension.
func (t FileType) Extension() string {
	if t == Dcp {
		return "dcp"
	}
	return "dng"
}

func (t FileType) String() string {
	if t == Dcp {
		return "DCP"
	}
	return "DNG"
}

// FileTypeFromMagic maps a header's magic number back to a FileType. ok
// is false for anything other than the two recognized magic numbers.
func FileTypeFromMagic(magic uint16) (FileType, bool) {
	switch magic {
	case dngio.DngMagic:
		return Dng, true
	case dngio.DcpMagic:
		return Dcp, true
	default:
		return 0, false
	}
}

// Document is a fully materialized DNG/DCP file: its header, every
// top-level IFD in the chain, and a handle back to the underlying stream
// so strip/blob bytes can be fetched lazily after the tree is parsed.
type Document struct {
	Header dngio.Header
	IFDs   []*ifd.IFD

	r io.ReadSeeker
}

// Open parses r's header and IFD chain and materializes every top-level
// IFD, keeping r open for later strip/blob reads.
func Open(r io.ReadSeeker, opts dngio.ReadOptions) (*Document, error) {
	hdr, ifds, err := dngio.ReadFile(r, opts)
	if err != nil {
		return nil, err
	}
	return &Document{Header: hdr, IFDs: ifds, r: r}, nil
}

// Type reports the document's file type, or ok=false if the header's
// magic somehow isn't one of the two recognized values (ReadFile already
// rejects that at parse time, so this should never happen on a Document
// returned by Open).
func (d *Document) Type() (FileType, bool) { return FileTypeFromMagic(d.Header.Magic) }

// Write drives the writer (C6) to emit ifds as a DNG/DCP file to w.
func Write(w io.Writer, ifds []*ifd.IFD, ft FileType, order biord.Order) error {
	return dngio.WriteFile(w, ifds, dngio.WriteOptions{Order: order, Magic: ft.Magic()})
}

// FirstIFD returns the first top-level IFD, which by convention holds
// the main image's metadata (§4.9).
func (d *Document) FirstIFD() *ifd.IFD {
	if len(d.IFDs) == 0 {
		return nil
	}
	return d.IFDs[0]
}

// EntryByPath searches every top-level IFD, in order, for the entry path
// resolves to. A leading index element in path selects a specific
// top-level IFD by position instead of searching all of them.
func (d *Document) EntryByPath(path ifd.Path) (ifd.Entry, bool) {
	elems := path.Elements()
	if len(elems) == 0 {
		return ifd.Entry{}, false
	}
	if idx, ok := elems[0].Index(); ok {
		if idx < 0 || idx >= len(d.IFDs) {
			return ifd.Entry{}, false
		}
		return d.IFDs[idx].EntryByPath(ifd.NewPath(elems[1:]...))
	}
	for _, tree := range d.IFDs {
		if e, ok := tree.EntryByPath(path); ok {
			return e, true
		}
	}
	return ifd.Entry{}, false
}

// ifdAt resolves path to the IFD it names: empty selects FirstIFD, a
// leading index element selects a top-level IFD by position (optionally
// followed by tag elements descending into its sub-IFDs), anything else
// searches every top-level IFD's own sub-IFD tree.
func (d *Document) ifdAt(path ifd.Path) (*ifd.IFD, bool) {
	elems := path.Elements()
	if len(elems) == 0 {
		f := d.FirstIFD()
		return f, f != nil
	}
	if idx, ok := elems[0].Index(); ok {
		if idx < 0 || idx >= len(d.IFDs) {
			return nil, false
		}
		return d.IFDs[idx].NavigateToIFD(ifd.NewPath(elems[1:]...))
	}
	for _, tree := range d.IFDs {
		if sub, ok := tree.NavigateToIFD(path); ok {
			return sub, true
		}
	}
	return nil, false
}

// containingIFDAt resolves path to the IFD directly holding the entry
// named by its final tag, the same way ifdAt resolves a whole sub-IFD.
func (d *Document) containingIFDAt(path ifd.Path) (*ifd.IFD, bool) {
	elems := path.Elements()
	if len(elems) == 0 {
		return nil, false
	}
	if idx, ok := elems[0].Index(); ok {
		if idx < 0 || idx >= len(d.IFDs) || len(elems) == 1 {
			return nil, false
		}
		return d.IFDs[idx].ContainingIFD(ifd.NewPath(elems[1:]...))
	}
	for _, tree := range d.IFDs {
		if c, ok := tree.ContainingIFD(path); ok {
			return c, true
		}
	}
	return nil, false
}

var (
	newSubfileTypeTag  = ifdtag.FromNumber(0xFE, ifdtag.Root)
	compressionTag     = ifdtag.FromNumber(0x103, ifdtag.Root)
	stripOffsetsTag    = ifdtag.FromNumber(0x111, ifdtag.Root)
	stripByteCountsTag = ifdtag.FromNumber(0x117, ifdtag.Root)
	tileOffsetsTag     = ifdtag.FromNumber(0x144, ifdtag.Root)
)

// NeededBufferSizeForOffsets reads the Lengths entry paired with the
// Offsets-interpreted entry path resolves to, in the same containing IFD
// (§3 invariant 7). Both entries must be single-valued; a list-of-offsets
// entry must be indexed first (§4.9).
func (d *Document) NeededBufferSizeForOffsets(path ifd.Path) (uint32, error) {
	elems := path.Elements()
	if len(elems) == 0 {
		return 0, ifd.NewError(ifd.Lookup, "empty path")
	}
	tag, ok := elems[len(elems)-1].Tag()
	if !ok {
		return 0, ifd.NewError(ifd.Format, "path must end in a tag element")
	}
	interp := tag.Interpretation()
	if interp.Kind != ifdtag.Offsets {
		return 0, ifd.NewError(ifd.Format, "tag %s is not an Offsets field", tag.Name())
	}
	containing, ok := d.containingIFDAt(path)
	if !ok {
		return 0, ifd.NewError(ifd.Lookup, "no containing IFD at path %s", path)
	}
	e, ok := containing.Get(tag.Number())
	if !ok {
		return 0, ifd.NewError(ifd.Lookup, "tag %s not present", tag.Name())
	}
	if e.Value.Kind() == ifd.KindList {
		return 0, ifd.NewError(ifd.Unsupported, "tag %s has multiple offsets; index an element first", tag.Name())
	}
	lengthsTag, err := ifdtag.FromName(interp.LengthsTagName, tag.Namespace())
	if err != nil {
		return 0, ifd.Wrapf(ifd.Lookup, err, "resolving paired lengths tag for %s", tag.Name())
	}
	le, ok := containing.Get(lengthsTag.Number())
	if !ok {
		return 0, ifd.NewError(ifd.Lookup, "paired lengths tag %s not present", lengthsTag.Name())
	}
	if le.Value.Kind() == ifd.KindList {
		return 0, ifd.NewError(ifd.Unsupported, "paired lengths tag %s has multiple values", lengthsTag.Name())
	}
	n, ok := le.Value.AsU32()
	if !ok {
		return 0, ifd.NewError(ifd.Format, "paired lengths tag %s is not integral", lengthsTag.Name())
	}
	return n, nil
}

// ReadOffsetsToBuffer seeks to the u32 value of the Offsets entry path
// resolves to and reads exactly len(buffer) bytes, failing if buffer's
// size doesn't match NeededBufferSizeForOffsets.
func (d *Document) ReadOffsetsToBuffer(path ifd.Path, buffer []byte) error {
	needed, err := d.NeededBufferSizeForOffsets(path)
	if err != nil {
		return err
	}
	if uint32(len(buffer)) != needed {
		return ifd.NewError(ifd.Format, "buffer size %d does not match needed size %d", len(buffer), needed)
	}
	elems := path.Elements()
	tag, _ := elems[len(elems)-1].Tag()
	containing, _ := d.containingIFDAt(path)
	e, _ := containing.Get(tag.Number())
	offset, ok := e.Value.AsU32()
	if !ok {
		return ifd.NewError(ifd.Format, "tag %s value is not integral", tag.Name())
	}
	if _, err := d.r.Seek(int64(offset), io.SeekStart); err != nil {
		return ifd.Wrap(ifd.IO, err, "seeking to offsets entry")
	}
	if _, err := io.ReadFull(d.r, buffer); err != nil {
		return ifd.Wrap(ifd.IO, err, "reading offsets payload")
	}
	return nil
}

// MainImageDataIFDPath returns the path of the top-level IFD whose
// NewSubfileType is 0 (the main full-resolution image, §4.9), or an
// empty path if none is found.
func (d *Document) MainImageDataIFDPath() ifd.Path {
	for i, tree := range d.IFDs {
		e, ok := tree.Get(newSubfileTypeTag.Number())
		if !ok {
			continue
		}
		if v, ok := e.Value.AsU32(); ok && v == 0 {
			return ifd.NewPath(ifd.IndexElement(i))
		}
	}
	return ifd.Path{}
}

// NeededBufferLengthForImageData computes the byte length needed to hold
// the image data of the IFD at ifdPath (§4.9): fails as Unsupported if
// Compression is present and not 1, sums StripByteCounts if strips are
// present, fails as Unsupported (not implemented) for tiled data, and
// fails as Format ("no image data") otherwise.
func (d *Document) NeededBufferLengthForImageData(ifdPath ifd.Path) (uint32, error) {
	tree, ok := d.ifdAt(ifdPath)
	if !ok {
		return 0, ifd.NewError(ifd.Lookup, "no IFD at path %s", ifdPath)
	}
	if e, ok := tree.Get(compressionTag.Number()); ok {
		if v, ok := e.Value.AsU32(); ok && v != 1 {
			return 0, ifd.NewError(ifd.Unsupported, "compressed image data (compression=%d) is not supported", v)
		}
	}
	if _, ok := tree.Get(stripOffsetsTag.Number()); ok {
		lengthsE, ok := tree.Get(stripByteCountsTag.Number())
		if !ok {
			return 0, ifd.NewError(ifd.Format, "StripOffsets present without StripByteCounts")
		}
		var total uint32
		for _, v := range lengthsE.Value.AsList() {
			n, ok := v.AsU32()
			if !ok {
				return 0, ifd.NewError(ifd.Format, "StripByteCounts element is not integral")
			}
			total += n
		}
		return total, nil
	}
	if _, ok := tree.Get(tileOffsetsTag.Number()); ok {
		return 0, ifd.NewError(ifd.Unsupported, "tiled image data is not implemented")
	}
	return 0, ifd.NewError(ifd.Format, "no image data")
}

// ReadImageDataToBuffer concatenates the main image's strips, in strip
// order, into buffer (§4.9). buffer must be exactly
// NeededBufferLengthForImageData bytes.
func (d *Document) ReadImageDataToBuffer(ifdPath ifd.Path, buffer []byte) error {
	needed, err := d.NeededBufferLengthForImageData(ifdPath)
	if err != nil {
		return err
	}
	if uint32(len(buffer)) != needed {
		return ifd.NewError(ifd.Format, "buffer size %d does not match needed size %d", len(buffer), needed)
	}
	tree, _ := d.ifdAt(ifdPath)
	offsetsE, _ := tree.Get(stripOffsetsTag.Number())
	lengthsE, _ := tree.Get(stripByteCountsTag.Number())
	offsets := offsetsE.Value.AsList()
	lengths := lengthsE.Value.AsList()
	if len(offsets) != len(lengths) {
		return ifd.NewError(ifd.Format, "StripOffsets count %d does not match StripByteCounts count %d", len(offsets), len(lengths))
	}
	pos := uint32(0)
	for i := range offsets {
		off, ok := offsets[i].AsU32()
		if !ok {
			return ifd.NewError(ifd.Format, "StripOffsets element %d is not integral", i)
		}
		n, ok := lengths[i].AsU32()
		if !ok {
			return ifd.NewError(ifd.Format, "StripByteCounts element %d is not integral", i)
		}
		if _, err := d.r.Seek(int64(off), io.SeekStart); err != nil {
			return ifd.Wrap(ifd.IO, err, "seeking to strip")
		}
		if _, err := io.ReadFull(d.r, buffer[pos:pos+n]); err != nil {
			return ifd.Wrap(ifd.IO, err, "reading strip")
		}
		pos += n
	}
	return nil
}

var (
	gpsLatitudeTag     = ifdtag.FromNumber(0x2, ifdtag.Gps)
	gpsLatitudeRefTag  = ifdtag.FromNumber(0x1, ifdtag.Gps)
	gpsLongitudeTag    = ifdtag.FromNumber(0x4, ifdtag.Gps)
	gpsLongitudeRefTag = ifdtag.FromNumber(0x3, ifdtag.Gps)
)

// GPSLatLng converts a GPS IFD's degrees/minutes/seconds rational triples
// and hemisphere refs into an s2.LatLng (§7 "GPS convenience
// conversions"), the one typed convenience beyond raw tag access this
// façade offers for location data. ok is false if either coordinate is
// missing or malformed.
func GPSLatLng(gps *ifd.IFD) (s2.LatLng, bool) {
	lat, ok := dmsDegrees(gps, gpsLatitudeTag, gpsLatitudeRefTag, "S")
	if !ok {
		return s2.LatLng{}, false
	}
	lng, ok := dmsDegrees(gps, gpsLongitudeTag, gpsLongitudeRefTag, "W")
	if !ok {
		return s2.LatLng{}, false
	}
	return s2.LatLngFromDegrees(lat, lng), true
}

func dmsDegrees(gps *ifd.IFD, valueTag, refTag ifdtag.Tag, negativeRef string) (float64, bool) {
	ve, ok := gps.Get(valueTag.Number())
	if !ok {
		return 0, false
	}
	dms := ve.Value.AsList()
	if len(dms) != 3 {
		return 0, false
	}
	deg, ok1 := dms[0].AsF64()
	min, ok2 := dms[1].AsF64()
	sec, ok3 := dms[2].AsF64()
	if !ok1 || !ok2 || !ok3 {
		return 0, false
	}
	degrees := deg + min/60 + sec/3600
	if re, ok := gps.Get(refTag.Number()); ok {
		if s, ok := re.Value.Ascii(); ok && strings.EqualFold(strings.TrimRight(s, "\x00"), negativeRef) {
			degrees = -degrees
		}
	}
	return degrees, true
}
