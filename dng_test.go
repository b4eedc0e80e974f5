package dng

import (
	"bytes"
	"io"
	"testing"

	"github.com/jrm-1535/dng/biord"
	"github.com/jrm-1535/dng/dngio"
	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

func mustTag(t *testing.T, name string, ns ifdtag.Namespace) ifdtag.Tag {
	t.Helper()
	tag, err := ifdtag.FromName(name, ns)
	if err != nil {
		t.Fatalf("FromName(%q): %v", name, err)
	}
	return tag
}

func buildSimpleImage(t *testing.T) *bytes.Buffer {
	t.Helper()
	root := ifd.New(ifdtag.Root)

	subfileTag := mustTag(t, "NewSubfileType", ifdtag.Root)
	root.Insert(ifd.Entry{Tag: subfileTag, Value: ifd.LongValue(0)})

	compressionTag := mustTag(t, "Compression", ifdtag.Root)
	root.Insert(ifd.Entry{Tag: compressionTag, Value: ifd.ShortValue(1)})

	stripOffsetsTag := mustTag(t, "StripOffsets", ifdtag.Root)
	stripByteCountsTag := mustTag(t, "StripByteCounts", ifdtag.Root)
	payload := []byte{1, 2, 3, 4, 5, 6}
	root.Insert(ifd.Entry{Tag: stripOffsetsTag, Value: ifd.OffsetsValue(&ifd.Offsets{
		Size: uint32(len(payload)),
		Write: func(w io.Writer) error {
			_, err := w.Write(payload)
			return err
		},
	})})
	root.Insert(ifd.Entry{Tag: stripByteCountsTag, Value: ifd.LongValue(uint32(len(payload)))})

	var buf bytes.Buffer
	if err := Write(&buf, []*ifd.IFD{root}, Dng, biord.LittleEndian); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestFileTypeMagicRoundTrip(t *testing.T) {
	ft, ok := FileTypeFromMagic(dngio.DngMagic)
	if !ok || ft != Dng {
		t.Errorf("FileTypeFromMagic(DngMagic) = %v, %v, want Dng, true", ft, ok)
	}
	ft, ok = FileTypeFromMagic(dngio.DcpMagic)
	if !ok || ft != Dcp {
		t.Errorf("FileTypeFromMagic(DcpMagic) = %v, %v, want Dcp, true", ft, ok)
	}
	if _, ok := FileTypeFromMagic(0); ok {
		t.Error("FileTypeFromMagic(0) should fail")
	}
	if Dng.Extension() != "dng" || Dcp.Extension() != "dcp" {
		t.Errorf("unexpected extensions: %q, %q", Dng.Extension(), Dcp.Extension())
	}
}

func TestOpenAndMainImageDataIFDPath(t *testing.T) {
	buf := buildSimpleImage(t)
	doc, err := Open(bytes.NewReader(buf.Bytes()), dngio.ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	ft, ok := doc.Type()
	if !ok || ft != Dng {
		t.Errorf("Type() = %v, %v, want Dng, true", ft, ok)
	}

	path := doc.MainImageDataIFDPath()
	if path.Len() != 1 {
		t.Fatalf("MainImageDataIFDPath() = %v, want a single index element", path)
	}
}

func TestNeededBufferLengthAndReadImageData(t *testing.T) {
	raw := buildSimpleImage(t)
	r := bytes.NewReader(raw.Bytes())
	doc, err := Open(r, dngio.ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	path := doc.MainImageDataIFDPath()
	n, err := doc.NeededBufferLengthForImageData(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("NeededBufferLengthForImageData() = %d, want 6", n)
	}

	buf := make([]byte, n)
	if err := doc.ReadImageDataToBuffer(path, buf); err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 5, 6}
	if !bytes.Equal(buf, want) {
		t.Errorf("ReadImageDataToBuffer() = %v, want %v", buf, want)
	}
}

func TestEntryByPathSearchesAllTopLevelIFDs(t *testing.T) {
	raw := buildSimpleImage(t)
	doc, err := Open(bytes.NewReader(raw.Bytes()), dngio.ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	compressionTag := mustTag(t, "Compression", ifdtag.Root)
	e, ok := doc.EntryByPath(ifd.NewPath(ifd.TagElement(compressionTag)))
	if !ok {
		t.Fatal("EntryByPath failed to find Compression")
	}
	if v, _ := e.Value.AsU32(); v != 1 {
		t.Errorf("Compression = %d, want 1", v)
	}
}

func TestNeededBufferSizeForOffsetsAndReadOffsetsToBuffer(t *testing.T) {
	raw := buildSimpleImage(t)
	doc, err := Open(bytes.NewReader(raw.Bytes()), dngio.ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	stripOffsetsTag := mustTag(t, "StripOffsets", ifdtag.Root)
	path := ifd.NewPath(ifd.TagElement(stripOffsetsTag))

	n, err := doc.NeededBufferSizeForOffsets(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("NeededBufferSizeForOffsets() = %d, want 6", n)
	}

	buf := make([]byte, n)
	if err := doc.ReadOffsetsToBuffer(path, buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4, 5, 6}) {
		t.Errorf("ReadOffsetsToBuffer() = %v, want [1 2 3 4 5 6]", buf)
	}
}

func TestGPSLatLng(t *testing.T) {
	gps := ifd.New(ifdtag.Gps)
	latTag := mustTag(t, "GPSLatitude", ifdtag.Gps)
	latRefTag := mustTag(t, "GPSLatitudeRef", ifdtag.Gps)
	lngTag := mustTag(t, "GPSLongitude", ifdtag.Gps)
	lngRefTag := mustTag(t, "GPSLongitudeRef", ifdtag.Gps)

	dms := ifd.MustListValue([]ifd.Value{
		ifd.RationalValue(37, 1), ifd.RationalValue(46, 1), ifd.RationalValue(0, 1),
	})
	gps.Insert(ifd.Entry{Tag: latTag, Value: dms})
	gps.Insert(ifd.Entry{Tag: latRefTag, Value: ifd.AsciiValue("N")})

	lngDms := ifd.MustListValue([]ifd.Value{
		ifd.RationalValue(122, 1), ifd.RationalValue(25, 1), ifd.RationalValue(0, 1),
	})
	gps.Insert(ifd.Entry{Tag: lngTag, Value: lngDms})
	gps.Insert(ifd.Entry{Tag: lngRefTag, Value: ifd.AsciiValue("W")})

	ll, ok := GPSLatLng(gps)
	if !ok {
		t.Fatal("GPSLatLng failed")
	}
	if d := ll.Lat.Degrees() - 37.7667; d > 1e-3 || d < -1e-3 {
		t.Errorf("Lat = %v, want ~37.7667", ll.Lat.Degrees())
	}
	if d := ll.Lng.Degrees() - (-122.4167); d > 1e-3 || d < -1e-3 {
		t.Errorf("Lng = %v, want ~-122.4167 (W negates)", ll.Lng.Degrees())
	}
}
