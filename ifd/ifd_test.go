package ifd

import (
	"testing"

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

func TestInsertReplacesInPlace(t *testing.T) {
	f := New(ifdtag.Root)
	make_ := mustTag(t, "Make", ifdtag.Root)
	f.Insert(Entry{Tag: make_, Value: AsciiValue("A")})
	f.Insert(Entry{Tag: make_, Value: AsciiValue("B")})

	if f.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after replacing the same tag", f.Len())
	}
	e, ok := f.Get(make_.Number())
	if !ok {
		t.Fatal("Get() did not find the replaced entry")
	}
	if s, _ := e.Value.Ascii(); s != "B" {
		t.Errorf("Get() returned %q, want the replacement value %q", s, "B")
	}
}

func TestInsertFromOther(t *testing.T) {
	a := New(ifdtag.Root)
	b := New(ifdtag.Root)
	makeTag := mustTag(t, "Make", ifdtag.Root)
	modelTag := mustTag(t, "Model", ifdtag.Root)
	a.Insert(Entry{Tag: makeTag, Value: AsciiValue("A")})
	b.Insert(Entry{Tag: makeTag, Value: AsciiValue("B")})
	b.Insert(Entry{Tag: modelTag, Value: AsciiValue("M")})

	a.InsertFromOther(b)
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	e, _ := a.Get(makeTag.Number())
	if s, _ := e.Value.Ascii(); s != "B" {
		t.Errorf("a shared tag should take other's value, got %q", s)
	}
}

func buildTreeWithExif(t *testing.T) *IFD {
	t.Helper()
	root := New(ifdtag.Root)
	exif := New(ifdtag.Exif)

	expTag := mustTag(t, "ExposureTime", ifdtag.Exif)
	exif.Insert(Entry{Tag: expTag, Value: RationalValue(1, 200)})

	exifTag := mustTag(t, "ExifTag", ifdtag.Root)
	root.Insert(Entry{Tag: exifTag, Value: IfdValue(exif)})
	return root
}

func TestEntryByPathDescendsSubIfd(t *testing.T) {
	root := buildTreeWithExif(t)
	exifTag := mustTag(t, "ExifTag", ifdtag.Root)
	expTag := mustTag(t, "ExposureTime", ifdtag.Exif)

	path := NewPath(TagElement(exifTag), TagElement(expTag))
	e, ok := root.EntryByPath(path)
	if !ok {
		t.Fatal("EntryByPath did not resolve into the Exif sub-IFD")
	}
	if f, _ := e.Value.AsF64(); f != 0.005 {
		t.Errorf("ExposureTime = %v, want 0.005", f)
	}
	if !e.Tag.Equal(expTag) {
		t.Errorf("terminal entry tag should be the final path tag")
	}
}

func TestContainingIFDFindsNestedHome(t *testing.T) {
	root := buildTreeWithExif(t)
	exifTag := mustTag(t, "ExifTag", ifdtag.Root)
	expTag := mustTag(t, "ExposureTime", ifdtag.Exif)

	path := NewPath(TagElement(exifTag), TagElement(expTag))
	containing, ok := root.ContainingIFD(path)
	if !ok {
		t.Fatal("ContainingIFD failed to resolve")
	}
	if containing.Namespace != ifdtag.Exif {
		t.Errorf("ContainingIFD should return the Exif sub-IFD, got namespace %v", containing.Namespace)
	}

	topPath := NewPath(TagElement(exifTag))
	top, ok := root.ContainingIFD(topPath)
	if !ok || top != root {
		t.Errorf("ContainingIFD of a top-level tag should be the root IFD itself")
	}
}

func TestNavigateToIFD(t *testing.T) {
	root := buildTreeWithExif(t)
	exifTag := mustTag(t, "ExifTag", ifdtag.Root)

	sub, ok := root.NavigateToIFD(NewPath(TagElement(exifTag)))
	if !ok || sub.Namespace != ifdtag.Exif {
		t.Fatalf("NavigateToIFD should land on the Exif sub-IFD, got %v, %v", sub, ok)
	}

	same, ok := root.NavigateToIFD(NewPath())
	if !ok || same != root {
		t.Errorf("NavigateToIFD of an empty path should return the receiver")
	}
}

func TestReplaceByPath(t *testing.T) {
	root := buildTreeWithExif(t)
	exifTag := mustTag(t, "ExifTag", ifdtag.Root)
	expTag := mustTag(t, "ExposureTime", ifdtag.Exif)

	path := NewPath(TagElement(exifTag), TagElement(expTag))
	if !root.ReplaceByPath(path, RationalValue(1, 60)) {
		t.Fatal("ReplaceByPath failed")
	}
	e, _ := root.EntryByPath(path)
	if f, _ := e.Value.AsF64(); f < 0.0166 || f > 0.0167 {
		t.Errorf("ExposureTime after replace = %v, want ~1/60", f)
	}
}

func TestFindEntries(t *testing.T) {
	root := New(ifdtag.Root)
	wTag := mustTag(t, "ImageWidth", ifdtag.Root)
	root.Insert(Entry{Tag: wTag, Value: LongValue(100)})

	paths := root.FindEntries(func(tag ifdtag.Tag, v Value) bool {
		return tag.Equal(wTag)
	})
	if len(paths) != 1 {
		t.Fatalf("FindEntries found %d matches, want 1", len(paths))
	}
}

func TestPathJoinAndParent(t *testing.T) {
	wTag := mustTag(t, "ImageWidth", ifdtag.Root)
	p := NewPath(IndexElement(0), TagElement(wTag))
	if p.String() != "0/ImageWidth" {
		t.Errorf("String() = %q, want %q", p.String(), "0/ImageWidth")
	}
	parent := p.Parent()
	if parent.Len() != 1 {
		t.Errorf("Parent().Len() = %d, want 1", parent.Len())
	}
}
