package biord

import (
	"bytes"
	"testing"
)

func TestOrderFromBOM(t *testing.T) {
	cases := []struct {
		bom  [2]byte
		want Order
		ok   bool
	}{
		{[2]byte{'I', 'I'}, LittleEndian, true},
		{[2]byte{'M', 'M'}, BigEndian, true},
		{[2]byte{'X', 'X'}, 0, false},
	}
	for _, c := range cases {
		got, ok := OrderFromBOM(c.bom)
		if ok != c.ok {
			t.Fatalf("OrderFromBOM(%v) ok = %v, want %v", c.bom, ok, c.ok)
		}
		if ok && got != c.want {
			t.Errorf("OrderFromBOM(%v) = %v, want %v", c.bom, got, c.want)
		}
	}
}

func TestBOMRoundTrip(t *testing.T) {
	for _, o := range []Order{LittleEndian, BigEndian} {
		bom := o.BOM()
		got, ok := OrderFromBOM(bom)
		if !ok || got != o {
			t.Errorf("BOM round trip failed for %v: got %v, ok %v", o, got, ok)
		}
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	for _, order := range []Order{LittleEndian, BigEndian} {
		var buf bytes.Buffer
		w := NewWriter(&buf, order)
		if err := w.U16(0x1234); err != nil {
			t.Fatal(err)
		}
		if err := w.U32(0xDEADBEEF); err != nil {
			t.Fatal(err)
		}
		if err := w.I32(-1); err != nil {
			t.Fatal(err)
		}
		if err := w.F64(3.5); err != nil {
			t.Fatal(err)
		}
		if err := w.Bytes([]byte("hi")); err != nil {
			t.Fatal(err)
		}

		r := NewReader(bytes.NewReader(buf.Bytes()), order)
		if v, err := r.U16(); err != nil || v != 0x1234 {
			t.Fatalf("U16 = %d, %v, want 0x1234", v, err)
		}
		if v, err := r.U32(); err != nil || v != 0xDEADBEEF {
			t.Fatalf("U32 = %x, %v, want 0xDEADBEEF", v, err)
		}
		if v, err := r.I32(); err != nil || v != -1 {
			t.Fatalf("I32 = %d, %v, want -1", v, err)
		}
		if v, err := r.F64(); err != nil || v != 3.5 {
			t.Fatalf("F64 = %v, %v, want 3.5", v, err)
		}
		if v, err := r.Bytes(2); err != nil || string(v) != "hi" {
			t.Fatalf("Bytes = %q, %v, want %q", v, err, "hi")
		}
	}
}

func TestZerosPad(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, LittleEndian)
	if err := w.Zeros(3); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0, 0, 0}) {
		t.Errorf("Zeros(3) wrote %v, want three zero bytes", buf.Bytes())
	}
}

func TestSeekAndPos(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}
	r := NewReader(bytes.NewReader(data), LittleEndian)
	if _, err := r.Seek(4); err != nil {
		t.Fatal(err)
	}
	pos, err := r.Pos()
	if err != nil {
		t.Fatal(err)
	}
	if pos != 4 {
		t.Errorf("Pos() = %d, want 4", pos)
	}
	v, err := r.U8()
	if err != nil || v != 4 {
		t.Fatalf("U8() after seek = %d, %v, want 4", v, err)
	}
}
