package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackStruct(t *testing.T) {
	rec := struct {
		Kind uint8
		X, Y int32
	}{Kind: 2, X: -1, Y: 256}

	var buf bytes.Buffer
	require.NoError(t, PackStruct(&buf, &rec))
	assert.Equal(t, []byte{2, 0xff, 0xff, 0xff, 0xff, 0, 0, 1, 0}, buf.Bytes())
}

func TestPackStruct_RejectsNonPointer(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PackStruct(&buf, struct{ A uint8 }{}))
	assert.Error(t, PackStruct(&buf, nil))
	v := 5
	assert.Error(t, PackStruct(&buf, &v))
}
