// Package biord provides endian-aware fixed-width reads and writes over a
// seekable byte stream.
//
// It generalizes the teacher's Desc.getUnsignedShort/getUnsignedLong
// family (which indexed directly into an in-memory byte slice) to any
// io.ReadSeeker / io.Writer, since a DNG file is read and written through
// os.File rather than loaded whole into memory.
package biord

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/valyala/bytebufferpool"
)

// Order is little- or big-endian, matching the file's BOM.
type Order int

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Uint32 decodes a 4-byte big/little-endian field according to o, for
// callers that already hold raw bytes (e.g. an IFD entry's inline slot)
// rather than a stream to read from.
func (o Order) Uint32(b []byte) uint32 { return o.binary().Uint32(b) }

// Uint16 is Uint32's 2-byte counterpart.
func (o Order) Uint16(b []byte) uint16 { return o.binary().Uint16(b) }

// BOM returns the two-byte byte-order-mark for o ("II" or "MM").
func (o Order) BOM() [2]byte {
	if o == BigEndian {
		return [2]byte{'M', 'M'}
	}
	return [2]byte{'I', 'I'}
}

// OrderFromBOM maps a two-byte BOM to an Order. ok is false for anything
// other than "II"/"MM".
func OrderFromBOM(bom [2]byte) (o Order, ok bool) {
	switch bom {
	case [2]byte{'I', 'I'}:
		return LittleEndian, true
	case [2]byte{'M', 'M'}:
		return BigEndian, true
	default:
		return 0, false
	}
}

var pool bytebufferpool.Pool

// Reader reads fixed-width integers and floats from an underlying
// io.ReadSeeker, advancing its position by exactly the datum's size per
// call (§4.1). It does no buffering or look-ahead of its own.
type Reader struct {
	r     io.ReadSeeker
	order Order
}

// NewReader wraps r with the given byte order.
func NewReader(r io.ReadSeeker, order Order) *Reader {
	return &Reader{r: r, order: order}
}

func (d *Reader) Order() Order { return d.order }

// Seek repositions the underlying stream to an absolute file offset.
func (d *Reader) Seek(offset int64) (int64, error) {
	return d.r.Seek(offset, io.SeekStart)
}

// Pos reports the current stream position.
func (d *Reader) Pos() (int64, error) {
	return d.r.Seek(0, io.SeekCurrent)
}

func (d *Reader) fill(n int) (*bytebufferpool.ByteBuffer, error) {
	buf := pool.Get()
	buf.B = buf.B[:n]
	if _, err := io.ReadFull(d.r, buf.B); err != nil {
		pool.Put(buf)
		return nil, err
	}
	return buf, nil
}

func (d *Reader) U8() (uint8, error) {
	buf, err := d.fill(1)
	if err != nil {
		return 0, err
	}
	v := buf.B[0]
	pool.Put(buf)
	return v, nil
}

func (d *Reader) I8() (int8, error) {
	v, err := d.U8()
	return int8(v), err
}

func (d *Reader) U16() (uint16, error) {
	buf, err := d.fill(2)
	if err != nil {
		return 0, err
	}
	v := d.order.binary().Uint16(buf.B)
	pool.Put(buf)
	return v, nil
}

func (d *Reader) I16() (int16, error) {
	v, err := d.U16()
	return int16(v), err
}

func (d *Reader) U32() (uint32, error) {
	buf, err := d.fill(4)
	if err != nil {
		return 0, err
	}
	v := d.order.binary().Uint32(buf.B)
	pool.Put(buf)
	return v, nil
}

func (d *Reader) I32() (int32, error) {
	v, err := d.U32()
	return int32(v), err
}

func (d *Reader) U64() (uint64, error) {
	buf, err := d.fill(8)
	if err != nil {
		return 0, err
	}
	v := d.order.binary().Uint64(buf.B)
	pool.Put(buf)
	return v, nil
}

func (d *Reader) I64() (int64, error) {
	v, err := d.U64()
	return int64(v), err
}

func (d *Reader) F32() (float32, error) {
	v, err := d.U32()
	return math.Float32frombits(v), err
}

func (d *Reader) F64() (float64, error) {
	v, err := d.U64()
	return math.Float64frombits(v), err
}

// Bytes reads n raw bytes, bypassing the endianness flag (§4.1, "8-bit
// operations bypass the endianness flag").
func (d *Reader) Bytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(d.r, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Writer writes fixed-width integers and floats to an underlying
// io.Writer, in the construction-time byte order.
type Writer struct {
	w     io.Writer
	order Order
}

// NewWriter wraps w with the given byte order.
func NewWriter(w io.Writer, order Order) *Writer {
	return &Writer{w: w, order: order}
}

func (d *Writer) Order() Order { return d.order }

func (d *Writer) drain(buf *bytebufferpool.ByteBuffer) error {
	_, err := d.w.Write(buf.B)
	pool.Put(buf)
	return err
}

func (d *Writer) U8(v uint8) error {
	buf := pool.Get()
	buf.B = append(buf.B[:0], v)
	return d.drain(buf)
}

func (d *Writer) I8(v int8) error { return d.U8(uint8(v)) }

func (d *Writer) U16(v uint16) error {
	buf := pool.Get()
	buf.B = buf.B[:2]
	d.order.binary().PutUint16(buf.B, v)
	return d.drain(buf)
}

func (d *Writer) I16(v int16) error { return d.U16(uint16(v)) }

func (d *Writer) U32(v uint32) error {
	buf := pool.Get()
	buf.B = buf.B[:4]
	d.order.binary().PutUint32(buf.B, v)
	return d.drain(buf)
}

func (d *Writer) I32(v int32) error { return d.U32(uint32(v)) }

func (d *Writer) U64(v uint64) error {
	buf := pool.Get()
	buf.B = buf.B[:8]
	d.order.binary().PutUint64(buf.B, v)
	return d.drain(buf)
}

func (d *Writer) I64(v int64) error { return d.U64(uint64(v)) }

func (d *Writer) F32(v float32) error { return d.U32(math.Float32bits(v)) }

func (d *Writer) F64(v float64) error { return d.U64(math.Float64bits(v)) }

// Bytes writes raw bytes, bypassing the endianness flag.
func (d *Writer) Bytes(b []byte) error {
	_, err := d.w.Write(b)
	return err
}

// Zeros writes n zero bytes, used by the write planner to pad up to a
// word-aligned offset.
func (d *Writer) Zeros(n int) error {
	if n <= 0 {
		return nil
	}
	buf := pool.Get()
	defer pool.Put(buf)
	if cap(buf.B) < n {
		buf.B = make([]byte, n)
	} else {
		buf.B = buf.B[:n]
		for i := range buf.B {
			buf.B[i] = 0
		}
	}
	_, err := d.w.Write(buf.B)
	return err
}
