package dngio

import (
	"io"

	"github.com/dsoprea/go-logging"

	"github.com/jrm-1535/dng/biord"
	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

var readerLogger = log.NewLogger("dng.reader")

// The two file-format discriminators recognized on the wire (§4.6).
const (
	DngMagic uint16 = 42
	DcpMagic uint16 = 0x4352
)

// Header is the 8-byte leading block of a DNG/DCP file.
type Header struct {
	Order          biord.Order
	Magic          uint16
	FirstIFDOffset uint32
}

// ReadOptions configures the reader pipeline. It is deliberately a plain
// struct, not a functional-option chain, matching the shape of the
// teacher's Control struct.
type ReadOptions struct{}

// ReadHeader parses the byte-order mark, magic and first-IFD offset
// starting at r's current position.
func ReadHeader(r io.ReadSeeker) (Header, error) {
	var bom [2]byte
	if _, err := io.ReadFull(r, bom[:]); err != nil {
		return Header{}, ifd.Wrap(ifd.IO, err, "reading byte-order mark")
	}
	order, ok := biord.OrderFromBOM(bom)
	if !ok {
		return Header{}, ifd.NewError(ifd.Format, "bad byte-order mark %q", bom[:])
	}
	br := biord.NewReader(r, order)
	magic, err := br.U16()
	if err != nil {
		return Header{}, ifd.Wrap(ifd.IO, err, "reading magic")
	}
	if magic != DngMagic && magic != DcpMagic {
		return Header{}, ifd.NewError(ifd.Format, "unknown magic 0x%X", magic)
	}
	firstIFD, err := br.U32()
	if err != nil {
		return Header{}, ifd.Wrap(ifd.IO, err, "reading first IFD offset")
	}
	return Header{Order: order, Magic: magic, FirstIFDOffset: firstIFD}, nil
}

// shallowEntry is one unmaterialized 12-byte IFD entry: tag, wire type
// code, count, and either the inline value or an offset, not yet
// disambiguated (§4.4).
type shallowEntry struct {
	tagNum       uint16
	wireType     uint16
	count        uint32
	inlineRaw    [4]byte
	pos          int64
}

type shallowIFD struct {
	entries []shallowEntry
}

func readShallowIFD(br *biord.Reader) (shallowIFD, int64, error) {
	n, err := br.U16()
	if err != nil {
		return shallowIFD{}, 0, ifd.Wrap(ifd.IO, err, "reading IFD entry count")
	}
	entries := make([]shallowEntry, 0, n)
	for i := 0; i < int(n); i++ {
		pos, err := br.Pos()
		if err != nil {
			return shallowIFD{}, 0, ifd.Wrap(ifd.IO, err, "reading IFD entry position")
		}
		tagNum, err := br.U16()
		if err != nil {
			return shallowIFD{}, 0, ifd.Wrap(ifd.IO, err, "reading entry tag")
		}
		wireType, err := br.U16()
		if err != nil {
			return shallowIFD{}, 0, ifd.Wrap(ifd.IO, err, "reading entry type")
		}
		count, err := br.U32()
		if err != nil {
			return shallowIFD{}, 0, ifd.Wrap(ifd.IO, err, "reading entry count")
		}
		raw, err := br.Bytes(4)
		if err != nil {
			return shallowIFD{}, 0, ifd.Wrap(ifd.IO, err, "reading entry inline value")
		}
		var inlineRaw [4]byte
		copy(inlineRaw[:], raw)
		entries = append(entries, shallowEntry{
			tagNum: tagNum, wireType: wireType, count: count,
			inlineRaw: inlineRaw, pos: pos,
		})
	}
	next, err := br.U32()
	if err != nil {
		return shallowIFD{}, 0, ifd.Wrap(ifd.IO, err, "reading next-IFD offset")
	}
	return shallowIFD{entries: entries}, int64(next), nil
}

// ReadFile parses the full header and IFD chain from r and materializes
// every top-level IFD, in Root namespace, per §4.4's top-level parse.
func ReadFile(r io.ReadSeeker, opts ReadOptions) (Header, []*ifd.IFD, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return Header{}, nil, err
	}
	br := biord.NewReader(r, hdr.Order)

	var shallows []shallowIFD
	offset := int64(hdr.FirstIFDOffset)
	for offset != 0 {
		if _, err := br.Seek(offset); err != nil {
			return hdr, nil, ifd.Wrap(ifd.IO, err, "seeking to IFD")
		}
		sh, next, err := readShallowIFD(br)
		if err != nil {
			return hdr, nil, err
		}
		shallows = append(shallows, sh)
		offset = next
	}

	trees := make([]*ifd.IFD, 0, len(shallows))
	for _, sh := range shallows {
		tree, err := materializeShallow(br, sh, ifdtag.Root)
		if err != nil {
			return hdr, nil, err
		}
		trees = append(trees, tree)
	}
	return hdr, trees, nil
}

func materializeShallow(br *biord.Reader, sh shallowIFD, ns ifdtag.Namespace) (*ifd.IFD, error) {
	tree := ifd.New(ns)
	for _, se := range sh.entries {
		entry, ok, err := materializeEntry(br, se, ns)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		tree.Insert(entry)
	}
	return tree, nil
}

// readIFDTree reads and fully materializes a single IFD at offset (a
// sub-IFD pointed to by an IfdOffset entry, not a chain link: the
// next-IFD field that follows it is read for wire-shape consistency but
// ignored, per §4.4's "read an IFD").
func readIFDTree(br *biord.Reader, offset int64, ns ifdtag.Namespace) (*ifd.IFD, error) {
	if _, err := br.Seek(offset); err != nil {
		return nil, ifd.Wrap(ifd.IO, err, "seeking to nested IFD")
	}
	sh, _, err := readShallowIFD(br)
	if err != nil {
		return nil, err
	}
	return materializeShallow(br, sh, ns)
}

// materializeEntry decodes one shallow entry into a full Entry. ok is
// false (with a nil error) when the entry's type code is unknown: per
// §7's propagation policy, that's collected-then-filtered rather than
// fatal.
func materializeEntry(br *biord.Reader, se shallowEntry, ns ifdtag.Namespace) (entry ifd.Entry, ok bool, err error) {
	vt, known := ifdtag.ValueTypeFromWireCode(se.wireType)
	if !known {
		readerLogger.Warningf(nil, "skipping tag 0x%X: unknown type code 0x%X", se.tagNum, se.wireType)
		return ifd.Entry{}, false, nil
	}
	tag := ifdtag.FromNumber(se.tagNum, ns)
	size := vt.Size()
	need := uint64(se.count) * uint64(size)

	var valuePos int64
	if need <= 4 {
		valuePos = se.pos + 8
	} else {
		valuePos = int64(br.Order().Uint32(se.inlineRaw[:]))
	}

	interp := tag.Interpretation()
	switch {
	case interp.Kind == ifdtag.IfdOffset:
		if vt != ifdtag.Long {
			return ifd.Entry{}, true, ifd.NewError(ifd.Format, "tag %s: IfdOffset entry must be type Long, got %s", tag.Name(), vt)
		}
		v, err := readIfdOffsetValue(br, valuePos, se.count, interp.IfdType)
		if err != nil {
			return ifd.Entry{}, true, err
		}
		return ifd.Entry{Tag: tag, Value: v}, true, nil

	case vt == ifdtag.Ascii:
		if se.count == 0 {
			return ifd.Entry{}, true, ifd.NewError(ifd.Format, "tag %s: Ascii entry has zero count", tag.Name())
		}
		if _, err := br.Seek(valuePos); err != nil {
			return ifd.Entry{}, true, ifd.Wrap(ifd.IO, err, "seeking to ascii value")
		}
		raw, err := br.Bytes(int(se.count - 1))
		if err != nil {
			return ifd.Entry{}, true, ifd.Wrap(ifd.IO, err, "reading ascii value")
		}
		return ifd.Entry{Tag: tag, Value: ifd.AsciiValue(string(raw))}, true, nil

	case se.count > 1:
		elems := make([]ifd.Value, se.count)
		for i := uint32(0); i < se.count; i++ {
			v, err := readPrimitiveAt(br, vt, valuePos+int64(i)*int64(size))
			if err != nil {
				return ifd.Entry{}, true, err
			}
			elems[i] = v
		}
		v, err := ifd.ListValue(elems)
		if err != nil {
			return ifd.Entry{}, true, err
		}
		return ifd.Entry{Tag: tag, Value: v}, true, nil

	default:
		v, err := readPrimitiveAt(br, vt, valuePos)
		if err != nil {
			return ifd.Entry{}, true, err
		}
		return ifd.Entry{Tag: tag, Value: v}, true, nil
	}
}

func readIfdOffsetValue(br *biord.Reader, valuePos int64, count uint32, childNS ifdtag.Namespace) (ifd.Value, error) {
	if count == 1 {
		off, err := readU32At(br, valuePos)
		if err != nil {
			return ifd.Value{}, err
		}
		sub, err := readIFDTree(br, int64(off), childNS)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.IfdValue(sub), nil
	}
	elems := make([]ifd.Value, count)
	for i := uint32(0); i < count; i++ {
		off, err := readU32At(br, valuePos+int64(i)*4)
		if err != nil {
			return ifd.Value{}, err
		}
		sub, err := readIFDTree(br, int64(off), childNS)
		if err != nil {
			return ifd.Value{}, err
		}
		elems[i] = ifd.IfdValue(sub)
	}
	return ifd.ListValue(elems)
}

func readU32At(br *biord.Reader, pos int64) (uint32, error) {
	if _, err := br.Seek(pos); err != nil {
		return 0, ifd.Wrap(ifd.IO, err, "seeking to offset field")
	}
	v, err := br.U32()
	if err != nil {
		return 0, ifd.Wrap(ifd.IO, err, "reading offset field")
	}
	return v, nil
}

func readPrimitiveAt(br *biord.Reader, vt ifdtag.ValueType, pos int64) (ifd.Value, error) {
	if _, err := br.Seek(pos); err != nil {
		return ifd.Value{}, ifd.Wrap(ifd.IO, err, "seeking to value")
	}
	switch vt {
	case ifdtag.Byte:
		v, err := br.U8()
		return ifd.ByteValue(v), wrapIOErr(err)
	case ifdtag.SignedByte:
		v, err := br.I8()
		return ifd.SignedByteValue(v), wrapIOErr(err)
	case ifdtag.Undefined:
		v, err := br.U8()
		return ifd.UndefinedValue(v), wrapIOErr(err)
	case ifdtag.Short:
		v, err := br.U16()
		return ifd.ShortValue(v), wrapIOErr(err)
	case ifdtag.SignedShort:
		v, err := br.I16()
		return ifd.SignedShortValue(v), wrapIOErr(err)
	case ifdtag.Long:
		v, err := br.U32()
		return ifd.LongValue(v), wrapIOErr(err)
	case ifdtag.SignedLong:
		v, err := br.I32()
		return ifd.SignedLongValue(v), wrapIOErr(err)
	case ifdtag.Rational:
		num, err := br.U32()
		if err != nil {
			return ifd.Value{}, wrapIOErr(err)
		}
		den, err := br.U32()
		return ifd.RationalValue(num, den), wrapIOErr(err)
	case ifdtag.SignedRational:
		num, err := br.I32()
		if err != nil {
			return ifd.Value{}, wrapIOErr(err)
		}
		den, err := br.I32()
		return ifd.SignedRationalValue(num, den), wrapIOErr(err)
	case ifdtag.Float:
		v, err := br.F32()
		return ifd.FloatValue(v), wrapIOErr(err)
	case ifdtag.Double:
		v, err := br.F64()
		return ifd.DoubleValue(v), wrapIOErr(err)
	default:
		return ifd.Value{}, ifd.NewError(ifd.Internal, "readPrimitiveAt: unhandled type %s", vt)
	}
}

func wrapIOErr(err error) error {
	if err == nil {
		return nil
	}
	return ifd.Wrap(ifd.IO, err, "reading value")
}
