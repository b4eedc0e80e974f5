package dngio

import (
	"bytes"
	"testing"

	"github.com/jrm-1535/dng/biord"
)

func TestWritePlanOffsetsFixedAtEnqueueTime(t *testing.T) {
	var buf bytes.Buffer
	plan := NewWritePlan(&buf, biord.LittleEndian)

	off1 := plan.AddEntry(4, func(w *biord.Writer) error { return w.U32(0xAAAAAAAA) })
	off2 := plan.AddEntry(2, func(w *biord.Writer) error { return w.U16(0x1234) })

	if off1 != 0 {
		t.Errorf("first entry offset = %d, want 0", off1)
	}
	if off2 != 4 {
		t.Errorf("second entry offset = %d, want 4", off2)
	}

	if err := plan.Execute(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 6 {
		t.Fatalf("wrote %d bytes, want 6", buf.Len())
	}
}

func TestWritePlanAligns4Byte(t *testing.T) {
	var buf bytes.Buffer
	plan := NewWritePlan(&buf, biord.LittleEndian)

	plan.AddEntry(1, func(w *biord.Writer) error { return w.U8(1) })
	off := plan.AddEntry(4, func(w *biord.Writer) error { return w.U32(2) })
	if off != 4 {
		t.Errorf("second entry offset = %d, want 4 (word-aligned)", off)
	}

	if err := plan.Execute(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 8 {
		t.Fatalf("wrote %d bytes, want 8 (1 + 3 pad + 4)", buf.Len())
	}
}

func TestWritePlanEntriesCanEnqueueMore(t *testing.T) {
	var buf bytes.Buffer
	plan := NewWritePlan(&buf, biord.LittleEndian)

	plan.AddEntry(4, func(w *biord.Writer) error {
		plan.AddEntry(2, func(w *biord.Writer) error { return w.U16(9) })
		return w.U32(1)
	})

	if err := plan.Execute(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 6 {
		t.Fatalf("wrote %d bytes, want 6", buf.Len())
	}
}

func TestWritePlanSelfCheckCatchesMismatch(t *testing.T) {
	var buf bytes.Buffer
	plan := NewWritePlan(&buf, biord.LittleEndian)
	plan.AddEntry(4, func(w *biord.Writer) error { return w.U16(1) }) // declares 4, writes 2

	if err := plan.Execute(); err == nil {
		t.Fatal("Execute should fail when a closure's byte count doesn't match its declared size")
	}
}
