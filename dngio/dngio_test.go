package dngio

import (
	"bytes"
	"testing"

	"github.com/jrm-1535/dng/biord"
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

func TestWriteReadRoundTrip(t *testing.T) {
	root := ifd.New(ifdtag.Root)
	widthTag := mustTag(t, "ImageWidth", ifdtag.Root)
	makeTag := mustTag(t, "Make", ifdtag.Root)
	root.Insert(ifd.Entry{Tag: widthTag, Value: ifd.LongValue(4000)})
	root.Insert(ifd.Entry{Tag: makeTag, Value: ifd.AsciiValue("ACME")})

	exif := ifd.New(ifdtag.Exif)
	expTag := mustTag(t, "ExposureTime", ifdtag.Exif)
	exif.Insert(ifd.Entry{Tag: expTag, Value: ifd.RationalValue(1, 250)})
	exifTag := mustTag(t, "ExifTag", ifdtag.Root)
	root.Insert(ifd.Entry{Tag: exifTag, Value: ifd.IfdValue(exif)})

	var buf bytes.Buffer
	err := WriteFile(&buf, []*ifd.IFD{root}, WriteOptions{Order: biord.LittleEndian, Magic: DngMagic})
	if err != nil {
		t.Fatal(err)
	}

	hdr, trees, err := ReadFile(bytes.NewReader(buf.Bytes()), ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Magic != DngMagic {
		t.Errorf("Magic = 0x%X, want DngMagic", hdr.Magic)
	}
	if len(trees) != 1 {
		t.Fatalf("got %d top-level IFDs, want 1", len(trees))
	}

	got := trees[0]
	wEntry, ok := got.Get(widthTag.Number())
	if !ok {
		t.Fatal("ImageWidth not round-tripped")
	}
	if v, _ := wEntry.Value.AsU32(); v != 4000 {
		t.Errorf("ImageWidth = %d, want 4000", v)
	}

	mEntry, ok := got.Get(makeTag.Number())
	if !ok {
		t.Fatal("Make not round-tripped")
	}
	if s, _ := mEntry.Value.Ascii(); s != "ACME" {
		t.Errorf("Make = %q, want ACME", s)
	}

	exifEntry, ok := got.Get(exifTag.Number())
	if !ok {
		t.Fatal("ExifTag not round-tripped")
	}
	sub, ok := exifEntry.Value.Ifd()
	if !ok {
		t.Fatal("ExifTag value should be an IFD")
	}
	expEntry, ok := sub.Get(expTag.Number())
	if !ok {
		t.Fatal("ExposureTime not round-tripped into the Exif sub-IFD")
	}
	if f, _ := expEntry.Value.AsF64(); f != 0.004 {
		t.Errorf("ExposureTime = %v, want 0.004", f)
	}
}

func TestWriteReadRoundTripBigEndian(t *testing.T) {
	root := ifd.New(ifdtag.Root)
	widthTag := mustTag(t, "ImageWidth", ifdtag.Root)
	root.Insert(ifd.Entry{Tag: widthTag, Value: ifd.LongValue(1234)})

	var buf bytes.Buffer
	if err := WriteFile(&buf, []*ifd.IFD{root}, WriteOptions{Order: biord.BigEndian, Magic: DngMagic}); err != nil {
		t.Fatal(err)
	}
	hdr, trees, err := ReadFile(bytes.NewReader(buf.Bytes()), ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Order != biord.BigEndian {
		t.Errorf("Order = %v, want BigEndian", hdr.Order)
	}
	e, _ := trees[0].Get(widthTag.Number())
	if v, _ := e.Value.AsU32(); v != 1234 {
		t.Errorf("ImageWidth = %d, want 1234", v)
	}
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{'I', 'I'})
	w := biord.NewWriter(&buf, biord.LittleEndian)
	_ = w.U16(0xBEEF)
	_ = w.U32(8)

	if _, err := ReadHeader(bytes.NewReader(buf.Bytes())); err == nil {
		t.Fatal("ReadHeader should reject an unrecognized magic number")
	}
}
