// pad.go - Merkle-Damgard message padding

// Package pad implements the Merkle-Damgard message preprocessing shared by
// MD4, MD5, SHA-1, SHA-2 and RIPEMD-160: a 0x80 terminator, zero fill to the
// block boundary, and the message bit length.
package pad

import (
	"encoding/binary"
)

// Len returns the length of the padded buffer for an n byte message.
func Len(n, blockSize, lengthSize int) int {
	l := n + 1 + lengthSize
	if r := l % blockSize; r != 0 {
		l += blockSize - r
	}
	return l
}

// Pad returns a copy of msg padded to a multiple of blockSize, ending in a
// lengthSize byte field holding the message length in bits, encoded in order.
// lengthSize must be 8 or 16.  A 0x80 terminator is always present, so a
// message that fills a block exactly gains a full extra block.
func Pad(msg []byte, blockSize, lengthSize int, order binary.ByteOrder) []byte {
	n := len(msg)
	out := make([]byte, Len(n, blockSize, lengthSize))
	copy(out, msg)
	out[n] = 0x80

	// Bit length of n bytes as a 128 bit value.
	lo := uint64(n) << 3
	hi := uint64(n) >> 61

	field := out[len(out)-lengthSize:]
	switch lengthSize {
	case 8:
		order.PutUint64(field, lo)
	case 16:
		if order == binary.BigEndian {
			order.PutUint64(field[0:], hi)
			order.PutUint64(field[8:], lo)
		} else {
			order.PutUint64(field[0:], lo)
			order.PutUint64(field[8:], hi)
		}
	default:
		panic("pad: unsupported length field size")
	}
	return out
}
