package protocol

import (
	"io"
	"iter"

	"github.com/kamrankamilli/touchfwd/pkg/buffer"
)

// Decoder turns a fragmented byte stream into TouchEvents. Bytes are fed in
// with Feed or ReadFrom; Events drains every complete record currently
// buffered and can be iterated again once more bytes arrive.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	buf      *buffer.Arena
	consumed int64
	err      error
}

// NewDecoder returns a decoder whose unread bytes may never exceed maxBuffer.
// A maxBuffer of zero or less disables the limit.
func NewDecoder(maxBuffer int) *Decoder {
	return &Decoder{buf: buffer.NewArena(maxBuffer)}
}

// Feed appends p to the decode buffer.
func (d *Decoder) Feed(p []byte) error { return d.buf.Append(p) }

// ReadFrom performs one read of at most chunk bytes from r into the decode
// buffer. It returns the number of bytes read and the read error, if any.
func (d *Decoder) ReadFrom(r io.Reader, chunk int) (int, error) {
	return d.buf.ReadFrom(r, chunk)
}

// Buffered returns the number of bytes waiting for a complete record.
func (d *Decoder) Buffered() int { return d.buf.Len() }

// Consumed returns the total number of bytes decoded so far.
func (d *Decoder) Consumed() int64 { return d.consumed }

// Err returns the decode error that stopped the decoder, if any.
func (d *Decoder) Err() error { return d.err }

// Next decodes one record. ok is false when fewer than RecordSize bytes are
// buffered. Once a decode error has been returned the decoder stays failed.
func (d *Decoder) Next() (ev TouchEvent, ok bool, err error) {
	if d.err != nil {
		return TouchEvent{}, false, d.err
	}
	if d.buf.Len() < RecordSize {
		return TouchEvent{}, false, nil
	}
	b := d.buf.Bytes()
	if !Kind(b[0]).Valid() {
		d.err = &DecodeError{Kind: b[0], Offset: d.consumed}
		return TouchEvent{}, false, d.err
	}
	ev = decodeRecord(d.buf.Next(RecordSize))
	d.consumed += RecordSize
	return ev, true, nil
}

// Events yields every complete buffered record in arrival order. A decode
// error is yielded once with a zero event and ends the sequence.
func (d *Decoder) Events() iter.Seq2[TouchEvent, error] {
	return func(yield func(TouchEvent, error) bool) {
		for {
			ev, ok, err := d.Next()
			if err != nil {
				yield(TouchEvent{}, err)
				return
			}
			if !ok {
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}
