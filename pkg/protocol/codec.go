package protocol

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/kamrankamilli/touchfwd/pkg/internal/util"
)

type record struct {
	Kind uint8
	X    int32
	Y    int32
}

// Encode writes ev to w as a single record.
func Encode(w io.Writer, ev TouchEvent) error {
	return util.PackStruct(w, &record{Kind: uint8(ev.Kind), X: ev.X, Y: ev.Y})
}

// Marshal returns the records for evs concatenated.
func Marshal(evs ...TouchEvent) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(evs) * RecordSize)
	for _, ev := range evs {
		if err := Encode(&buf, ev); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// decodeRecord decodes the first RecordSize bytes of b. The kind byte is not
// validated.
func decodeRecord(b []byte) TouchEvent {
	_ = b[RecordSize-1]
	return TouchEvent{
		Kind: Kind(b[0]),
		X:    int32(binary.BigEndian.Uint32(b[1:5])),
		Y:    int32(binary.BigEndian.Uint32(b[5:9])),
	}
}
