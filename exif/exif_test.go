package exif

import (
	"testing"
	"time"

	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

func TestExposureTimeRoundTrip(t *testing.T) {
	tree := ifd.New(ifdtag.Exif)
	tree.Insert(ExposureTimeEntry(0.004))

	got, ok := ExposureTime(tree)
	if !ok {
		t.Fatal("ExposureTime missing after insert")
	}
	if d := got - 0.004; d > 1e-6 || d < -1e-6 {
		t.Errorf("ExposureTime = %v, want ~0.004", got)
	}
}

func TestFNumberRoundTrip(t *testing.T) {
	tree := ifd.New(ifdtag.Exif)
	tree.Insert(FNumberEntry(2.8))

	got, ok := FNumber(tree)
	if !ok {
		t.Fatal("FNumber missing after insert")
	}
	if d := got - 2.8; d > 1e-3 || d < -1e-3 {
		t.Errorf("FNumber = %v, want ~2.8", got)
	}
}

func TestISOSpeedRatingsRoundTrip(t *testing.T) {
	tree := ifd.New(ifdtag.Exif)
	e, err := ISOSpeedRatingsEntry(100, 200)
	if err != nil {
		t.Fatal(err)
	}
	tree.Insert(e)

	got, ok := ISOSpeedRatings(tree)
	if !ok || len(got) != 2 || got[0] != 100 || got[1] != 200 {
		t.Errorf("ISOSpeedRatings = %v, %v, want [100 200], true", got, ok)
	}
}

func TestDateTimeOriginalRoundTrip(t *testing.T) {
	tree := ifd.New(ifdtag.Exif)
	want := time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)
	tree.Insert(DateTimeOriginalEntry(want))

	got, ok := DateTimeOriginal(tree)
	if !ok {
		t.Fatal("DateTimeOriginal missing after insert")
	}
	if !got.Equal(want) {
		t.Errorf("DateTimeOriginal = %v, want %v", got, want)
	}
}

func TestMissingFieldsReportNotOK(t *testing.T) {
	tree := ifd.New(ifdtag.Exif)
	if _, ok := ExposureTime(tree); ok {
		t.Error("ExposureTime should report false on an empty tree")
	}
	if _, ok := FNumber(tree); ok {
		t.Error("FNumber should report false on an empty tree")
	}
	if _, ok := ISOSpeedRatings(tree); ok {
		t.Error("ISOSpeedRatings should report false on an empty tree")
	}
	if _, ok := DateTimeOriginal(tree); ok {
		t.Error("DateTimeOriginal should report false on an empty tree")
	}
}

func TestString(t *testing.T) {
	tree := ifd.New(ifdtag.Exif)
	tree.Insert(ExposureTimeEntry(0.01))
	tree.Insert(FNumberEntry(4))
	s := String(tree)
	if s == "" {
		t.Error("String() should describe the populated fields")
	}
}
