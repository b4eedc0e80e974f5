package dngyaml

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

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

func TestDumpParseRoundTrip(t *testing.T) {
	tree := ifd.New(ifdtag.Root)
	makeTag := mustTag(t, "Make", ifdtag.Root)
	orientationTag := mustTag(t, "Orientation", ifdtag.Root)
	tree.Insert(ifd.Entry{Tag: makeTag, Value: ifd.AsciiValue("ACME")})
	tree.Insert(ifd.Entry{Tag: orientationTag, Value: ifd.ShortValue(1)})

	var buf bytes.Buffer
	if err := Dump(&buf, tree, DumpOptions{}); err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(buf.Bytes(), ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed on dumped yaml: %v\n%s", err, buf.String())
	}

	e, ok := parsed.Get(makeTag.Number())
	if !ok {
		t.Fatal("Make missing after round trip")
	}
	if s, _ := e.Value.Ascii(); s != "ACME" {
		t.Errorf("Make = %q, want ACME", s)
	}

	o, ok := parsed.Get(orientationTag.Number())
	if !ok {
		t.Fatal("Orientation missing after round trip")
	}
	if v, _ := o.Value.Short(); v != 1 {
		t.Errorf("Orientation = %d, want 1 (dumped as enum label then reparsed)", v)
	}
}

func TestCfaPatternDumpsAsCanonicalLabel(t *testing.T) {
	tree := ifd.New(ifdtag.Root)
	cfaTag := mustTag(t, "CFAPattern", ifdtag.Root)
	list := ifd.MustListValue([]ifd.Value{
		ifd.ByteValue(0), ifd.ByteValue(1), ifd.ByteValue(1), ifd.ByteValue(2),
	})
	tree.Insert(ifd.Entry{Tag: cfaTag, Value: list})

	var buf bytes.Buffer
	if err := Dump(&buf, tree, DumpOptions{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("RGGB")) {
		t.Errorf("expected CFAPattern to dump as RGGB, got:\n%s", buf.String())
	}

	parsed, err := Parse(buf.Bytes(), ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	e, ok := parsed.Get(cfaTag.Number())
	if !ok {
		t.Fatal("CFAPattern missing after round trip")
	}
	elems := e.Value.AsList()
	want := []uint8{0, 1, 1, 2}
	if len(elems) != len(want) {
		t.Fatalf("got %d elements, want %d", len(elems), len(want))
	}
	for i, want := range want {
		b, ok := elems[i].Byte()
		if !ok || b != want {
			t.Errorf("element %d = %v, %v, want %d", i, b, ok, want)
		}
	}
}

func TestRationalAsFloat(t *testing.T) {
	tree := ifd.New(ifdtag.Exif)
	expTag := mustTag(t, "ExposureTime", ifdtag.Exif)
	tree.Insert(ifd.Entry{Tag: expTag, Value: ifd.RationalValue(1, 4)})

	var buf bytes.Buffer
	if err := Dump(&buf, tree, DumpOptions{RationalAsFloat: true}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("0.25")) {
		t.Errorf("expected rational dumped as float 0.25, got:\n%s", buf.String())
	}
}

func TestParseFileBlobReference(t *testing.T) {
	dir := t.TempDir()
	blobPath := filepath.Join(dir, "blob.bin")
	if err := os.WriteFile(blobPath, []byte{1, 2, 3, 4}, 0o644); err != nil {
		t.Fatal(err)
	}

	blobTag := mustTag(t, "MakerNote", ifdtag.Root)
	doc := blobTag.Name() + ": \"file://blob.bin\"\n"

	tree, err := Parse([]byte(doc), ParseOptions{BaseDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	e, ok := tree.Get(blobTag.Number())
	if !ok {
		t.Fatal("blob entry missing after parse")
	}
	elems := e.Value.AsList()
	if len(elems) != 4 {
		t.Fatalf("got %d bytes, want 4", len(elems))
	}
	for i, want := range []uint8{1, 2, 3, 4} {
		b, ok := elems[i].Byte()
		if !ok || b != want {
			t.Errorf("byte %d = %v, %v, want %d", i, b, ok, want)
		}
	}
}

func TestLocalTypeTagOverridesDeclaredType(t *testing.T) {
	wTag := mustTag(t, "ImageWidth", ifdtag.Root) // declared Short, Long
	doc := wTag.Name() + ": !SHORT \"7\"\n"

	tree, err := Parse([]byte(doc), ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	e, _ := tree.Get(wTag.Number())
	if e.Value.Kind() != ifd.KindShort {
		t.Errorf("local type tag !SHORT should force a Short value, got %v", e.Value.Kind())
	}
}
