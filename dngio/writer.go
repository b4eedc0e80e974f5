package dngio

import (
	"io"

	"github.com/dsoprea/go-logging"

	"github.com/jrm-1535/dng/biord"
	"github.com/jrm-1535/dng/ifd"
)

var writerLogger = log.NewLogger("dng.writer")

// WriteOptions configures the writer pipeline: byte order and which of
// the two recognized file types to stamp in the header.
type WriteOptions struct {
	Order biord.Order
	Magic uint16 // DngMagic or DcpMagic
}

// WriteFile drives the append-only write planner to emit ifds as a
// DNG/DCP file to out, per §4.6's four-step recipe.
func WriteFile(out io.Writer, ifds []*ifd.IFD, opts WriteOptions) error {
	plan := NewWritePlan(out, opts.Order)
	plan.AddEntry(8, func(w *biord.Writer) error {
		bom := opts.Order.BOM()
		if err := w.Bytes(bom[:]); err != nil {
			return err
		}
		if err := w.U16(opts.Magic); err != nil {
			return err
		}
		firstOffset := writeIFDs(plan, ifds)
		return w.U32(firstOffset)
	})
	writerLogger.Debugf(nil, "enqueued header for %d top-level IFD(s)", len(ifds))
	return plan.Execute()
}

// writeIFDs enqueues the chain starting at ifds[0] and returns its
// eventual file offset, or 0 (the chain terminator) if ifds is empty
// (§4.6 step 2).
func writeIFDs(plan *WritePlan, ifds []*ifd.IFD) uint32 {
	if len(ifds) == 0 {
		return 0
	}
	head := ifds[0]
	rest := ifds[1:]
	n := uint32(head.Len())
	size := 2 + 12*n + 4
	return plan.AddEntry(size, func(w *biord.Writer) error {
		if err := w.U16(uint16(n)); err != nil {
			return err
		}
		for _, e := range head.Entries() {
			if err := writeIFDEntry(plan, w, e); err != nil {
				return err
			}
		}
		next := writeIFDs(plan, rest)
		return w.U32(next)
	})
}

// writeIFDEntry writes one 12-byte entry: tag, type, count, and either
// the inline value (zero-padded to 4 bytes) or a u32 offset to an
// out-of-line value enqueued via the planner (§4.6 step 3).
func writeIFDEntry(plan *WritePlan, w *biord.Writer, e ifd.Entry) error {
	vt := e.Value.PrimitiveType()
	count := e.Value.Count()
	size := vt.Size()
	need := uint64(count) * uint64(size)

	if err := w.U16(e.Tag.Number()); err != nil {
		return err
	}
	if err := w.U16(vt.WireCode()); err != nil {
		return err
	}
	if err := w.U32(count); err != nil {
		return err
	}

	if need <= 4 {
		n, err := writeValue(plan, w, e.Value)
		if err != nil {
			return err
		}
		return w.Zeros(int(4 - n))
	}

	offset := plan.AddEntry(uint32(need), func(dw *biord.Writer) error {
		n, err := writeValue(plan, dw, e.Value)
		if err != nil {
			return err
		}
		if uint64(n) != need {
			return ifd.Fatal("writing tag %s: wrote %d bytes, need %d", e.Tag.Name(), n, need)
		}
		return nil
	})
	return w.U32(offset)
}

// writeValue emits v's bytes to w and returns how many it wrote. For Ifd
// and Offsets it enqueues the sub-IFD / blob via the planner and writes
// the resulting offset — the same 4-byte pointer shape whether it lands
// inline in the entry or out in the data area (§4.6 step 4, §9 "tagged
// union of values").
func writeValue(plan *WritePlan, w *biord.Writer, v ifd.Value) (uint32, error) {
	switch v.Kind() {
	case ifd.KindList:
		var total uint32
		want := v.PrimitiveType()
		for _, elem := range v.AsList() {
			if elem.PrimitiveType() != want {
				return total, ifd.NewError(ifd.Format, "list element has type %s, want %s", elem.PrimitiveType(), want)
			}
			n, err := writeValue(plan, w, elem)
			if err != nil {
				return total, err
			}
			total += n
		}
		return total, nil

	case ifd.KindIfd:
		sub, _ := v.Ifd()
		var children []*ifd.IFD
		if sub != nil {
			children = []*ifd.IFD{sub}
		}
		offset := writeIFDs(plan, children)
		return 4, w.U32(offset)

	case ifd.KindOffsets:
		payload, _ := v.OffsetsPayload()
		offset := plan.AddEntry(payload.Size, func(dw *biord.Writer) error {
			return payload.Write(dw)
		})
		return 4, w.U32(offset)

	default:
		return writePrimitive(w, v)
	}
}

func writePrimitive(w *biord.Writer, v ifd.Value) (uint32, error) {
	switch v.Kind() {
	case ifd.KindByte:
		val, _ := v.Byte()
		return 1, w.U8(val)
	case ifd.KindSignedByte:
		val, _ := v.SignedByte()
		return 1, w.I8(val)
	case ifd.KindUndefined:
		val, _ := v.Undefined()
		return 1, w.U8(val)
	case ifd.KindAscii:
		s, _ := v.Ascii()
		if err := w.Bytes([]byte(s)); err != nil {
			return 0, err
		}
		if err := w.U8(0); err != nil {
			return uint32(len(s)), err
		}
		return uint32(len(s)) + 1, nil
	case ifd.KindShort:
		val, _ := v.Short()
		return 2, w.U16(val)
	case ifd.KindSignedShort:
		val, _ := v.SignedShort()
		return 2, w.I16(val)
	case ifd.KindLong:
		val, _ := v.Long()
		return 4, w.U32(val)
	case ifd.KindSignedLong:
		val, _ := v.SignedLong()
		return 4, w.I32(val)
	case ifd.KindRational:
		r, _ := v.Rational()
		if err := w.U32(r.Num); err != nil {
			return 0, err
		}
		return 8, w.U32(r.Den)
	case ifd.KindSignedRational:
		r, _ := v.SignedRational()
		if err := w.I32(r.Num); err != nil {
			return 0, err
		}
		return 8, w.I32(r.Den)
	case ifd.KindFloat:
		val, _ := v.Float()
		return 4, w.F32(val)
	case ifd.KindDouble:
		val, _ := v.Double()
		return 8, w.F64(val)
	default:
		return 0, ifd.NewError(ifd.Internal, "writePrimitive: unhandled kind %s", v.Kind())
	}
}
