// Package dngio implements the binary side of the library: the IFD reader
// (C4), the append-only write planner (C5) and the DNG/DCP writer (C6).
package dngio

import (
	"io"

	"github.com/jrm-1535/dng/biord"
	"github.com/jrm-1535/dng/ifd"
)

// EntryWriter produces the bytes of one deferred write-plan entry.
type EntryWriter func(w *biord.Writer) error

type planEntry struct {
	offset uint32
	size   uint32
	write  EntryWriter
}

// WritePlan is an append-only FIFO of deferred writes whose offsets are
// fixed at enqueue time rather than measured in a separate pass — the
// format's IFD entries, sub-IFDs and external payloads all forward-
// reference a value that doesn't exist yet at the point it must be named.
type WritePlan struct {
	out     io.Writer
	order   biord.Order
	cursor  uint32
	written uint32
	queue   []planEntry
}

// NewWritePlan builds an empty plan that will write to out in the given
// byte order once Execute runs.
func NewWritePlan(out io.Writer, order biord.Order) *WritePlan {
	return &WritePlan{out: out, order: order}
}

func align4(v uint32) uint32 { return (v + 3) &^ 3 }

// AddEntry reserves size bytes at the next word-aligned offset and
// enqueues write to produce them when Execute reaches that offset. The
// offset is valid and stable the instant AddEntry returns, even though
// write itself hasn't run yet.
func (p *WritePlan) AddEntry(size uint32, write EntryWriter) uint32 {
	offset := align4(p.cursor)
	p.queue = append(p.queue, planEntry{offset: offset, size: size, write: write})
	p.cursor = offset + size
	return offset
}

// Execute drains the queue in FIFO order: for each entry, it pads the
// output with zeros up to the entry's offset, runs its closure, and
// verifies the closure wrote exactly the size it declared. Closures are
// free to call AddEntry themselves — the usual case, since writing one
// IFD's entries is what discovers its sub-IFDs and external payloads —
// so Execute keeps draining until the queue empties even if it grows
// while running.
func (p *WritePlan) Execute() error {
	padder := biord.NewWriter(p.out, p.order)
	for len(p.queue) > 0 {
		e := p.queue[0]
		p.queue = p.queue[1:]

		if e.offset < p.written {
			return ifd.Fatal("write plan: entry at offset %d precedes already-written position %d", e.offset, p.written)
		}
		if pad := e.offset - p.written; pad > 0 {
			if err := padder.Zeros(int(pad)); err != nil {
				return ifd.Wrap(ifd.IO, err, "padding write plan to offset")
			}
			p.written += pad
		}

		cw := &countingWriter{w: p.out}
		dw := biord.NewWriter(cw, p.order)
		if err := e.write(dw); err != nil {
			return err
		}
		if cw.n != e.size {
			return ifd.Fatal("write plan: entry at offset %d declared %d bytes but wrote %d", e.offset, e.size, cw.n)
		}
		p.written += cw.n
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n uint32
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += uint32(n)
	return n, err
}
