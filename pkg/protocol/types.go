// Package protocol implements the touch event wire format.
//
// Each record is 9 bytes with no padding:
//
//	[1 byte kind][4 bytes x, int32 big-endian][4 bytes y, int32 big-endian]
package protocol

import (
	"errors"
	"fmt"
)

// RecordSize is the size in bytes of one encoded TouchEvent.
const RecordSize = 9

// Kind is the pointer action carried by a record.
type Kind uint8

const (
	KindDown Kind = 0
	KindUp   Kind = 1
	KindMove Kind = 2
)

// Valid reports whether k is a recognized kind.
func (k Kind) Valid() bool { return k <= KindMove }

func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindUp:
		return "up"
	case KindMove:
		return "move"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a kind name back to its value.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "down":
		return KindDown, nil
	case "up":
		return KindUp, nil
	case "move":
		return KindMove, nil
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// TouchEvent is one pointer update in remote-device coordinates.
type TouchEvent struct {
	Kind Kind
	X, Y int32
}

func (e TouchEvent) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.X, e.Y)
}

// ErrUnknownKind is the cause of a DecodeError for a kind byte outside {0,1,2}.
var ErrUnknownKind = errors.New("unknown event kind")

// DecodeError reports a protocol violation at a position in the stream.
type DecodeError struct {
	// Kind is the offending kind byte.
	Kind byte
	// Offset is the stream offset of the start of the bad record.
	Offset int64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode record at offset %d: %v %d", e.Offset, ErrUnknownKind, e.Kind)
}

func (e *DecodeError) Unwrap() error { return ErrUnknownKind }
