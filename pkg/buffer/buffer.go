package buffer

import (
	"errors"
	"fmt"
	"io"
)

// ErrBufferFull is returned when appending would grow the buffer past its limit.
var ErrBufferFull = errors.New("decode buffer limit exceeded")

// Arena is an append-only byte buffer that is consumed from the front. Consumed
// space is reclaimed by sliding the unread tail to the start before the next
// append, so steady-state use does not allocate.
type Arena struct {
	data []byte
	off  int
	max  int
}

// NewArena returns an arena that refuses to hold more than max unread bytes.
// A max of zero or less disables the limit.
func NewArena(max int) *Arena {
	size := 1024
	if max > 0 && max < size {
		size = max
	}
	return &Arena{data: make([]byte, 0, size), max: max}
}

// Len returns the number of unread bytes.
func (a *Arena) Len() int { return len(a.data) - a.off }

// Bytes returns the unread bytes. The slice is valid until the next mutation.
func (a *Arena) Bytes() []byte { return a.data[a.off:] }

// Append copies p onto the end of the unread bytes.
func (a *Arena) Append(p []byte) error {
	if a.max > 0 && a.Len()+len(p) > a.max {
		return fmt.Errorf("%w: %d unread + %d new > %d", ErrBufferFull, a.Len(), len(p), a.max)
	}
	a.compact()
	a.data = append(a.data, p...)
	return nil
}

// ReadFrom performs a single read of at most n bytes from r into the arena,
// further limited to the room left under max. It returns ErrBufferFull only
// when no room is left. io.EOF is returned unchanged on an orderly close.
func (a *Arena) ReadFrom(r io.Reader, n int) (int, error) {
	if a.max > 0 {
		room := a.max - a.Len()
		if room <= 0 {
			return 0, fmt.Errorf("%w: %d unread, limit %d", ErrBufferFull, a.Len(), a.max)
		}
		n = min(n, room)
	}
	a.compact()
	if cap(a.data)-len(a.data) < n {
		grown := make([]byte, len(a.data), len(a.data)+n)
		copy(grown, a.data)
		a.data = grown
	}
	read, err := r.Read(a.data[len(a.data) : len(a.data)+n])
	a.data = a.data[:len(a.data)+read]
	return read, err
}

// Next consumes and returns the next n unread bytes. It panics if fewer than n
// bytes are unread.
func (a *Arena) Next(n int) []byte {
	if n > a.Len() {
		panic("buffer: Next beyond unread length")
	}
	b := a.data[a.off : a.off+n]
	a.off += n
	if a.off == len(a.data) {
		a.data = a.data[:0]
		a.off = 0
	}
	return b
}

func (a *Arena) compact() {
	if a.off == 0 {
		return
	}
	n := copy(a.data, a.data[a.off:])
	a.data = a.data[:n]
	a.off = 0
}
