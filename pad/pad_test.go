// pad_test.go - padding tests

package pad

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadInvariant(t *testing.T) {
	for _, p := range []struct {
		blockSize, lengthSize int
		order                 binary.ByteOrder
	}{
		{64, 8, binary.LittleEndian},
		{64, 8, binary.BigEndian},
		{128, 16, binary.BigEndian},
	} {
		for n := 0; n <= 3*p.blockSize; n++ {
			msg := bytes.Repeat([]byte{0xa5}, n)
			out := Pad(msg, p.blockSize, p.lengthSize, p.order)

			require.Zero(t, len(out)%p.blockSize, "n=%d", n)
			require.GreaterOrEqual(t, len(out), n+1+p.lengthSize, "n=%d", n)
			require.Less(t, len(out), n+1+p.lengthSize+p.blockSize, "n=%d", n)
			require.Equal(t, Len(n, p.blockSize, p.lengthSize), len(out))
			require.Equal(t, msg, out[:n])
			require.Equal(t, byte(0x80), out[n])
			for _, b := range out[n+1 : len(out)-p.lengthSize] {
				require.Zero(t, b, "n=%d", n)
			}
		}
	}
}

func TestPadDoesNotAliasInput(t *testing.T) {
	msg := make([]byte, 3, 64)
	out := Pad(msg, 64, 8, binary.BigEndian)
	out[0] = 0xff
	assert.Zero(t, msg[0])
	assert.Equal(t, 3, len(msg))
}

func TestPadLengthField(t *testing.T) {
	msg := []byte("abc")

	le := Pad(msg, 64, 8, binary.LittleEndian)
	require.Len(t, le, 64)
	assert.Equal(t, []byte{24, 0, 0, 0, 0, 0, 0, 0}, le[56:])

	be := Pad(msg, 64, 8, binary.BigEndian)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 24}, be[56:])

	wide := Pad(msg, 128, 16, binary.BigEndian)
	require.Len(t, wide, 128)
	want := make([]byte, 16)
	want[15] = 24
	assert.Equal(t, want, wide[112:])
}

func TestPadFullBlock(t *testing.T) {
	// 56 bytes leaves no room for the terminator and the length field.
	out := Pad(make([]byte, 56), 64, 8, binary.BigEndian)
	require.Len(t, out, 128)
	assert.Equal(t, byte(0x80), out[56])

	out = Pad(make([]byte, 64), 64, 8, binary.BigEndian)
	require.Len(t, out, 128)
	assert.Equal(t, byte(0x80), out[64])

	out = Pad(make([]byte, 55), 64, 8, binary.BigEndian)
	require.Len(t, out, 64)
	assert.Equal(t, byte(0x80), out[55])
}

func TestPadUnsupportedLengthSize(t *testing.T) {
	assert.Panics(t, func() { Pad(nil, 64, 4, binary.BigEndian) })
}
