// sha512.go - FIPS 180-4 section 6.4

// Package sha512 implements the SHA-512 hash algorithm as defined in
// FIPS 180-4.
package sha512

import (
	"encoding/binary"
	"math/bits"

	"github.com/yawning/hashes/pad"
	"github.com/yawning/hashes/utils"
)

const (
	// Size is the length of a SHA-512 digest in bytes.
	Size = 64

	// BlockSize is the SHA-512 block size in bytes.
	BlockSize = 128
)

// State is the SHA-512 chaining value.
type State [8]uint64

// Compress runs the SHA-512 compression function over one block and returns
// the new chaining value.
func Compress(s State, block *[BlockSize]byte) State {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[8*i:])
	}
	for i := 16; i < 80; i++ {
		v1 := w[i-2]
		s1 := bits.RotateLeft64(v1, -19) ^ bits.RotateLeft64(v1, -61) ^ (v1 >> 6)
		v0 := w[i-15]
		s0 := bits.RotateLeft64(v0, -1) ^ bits.RotateLeft64(v0, -8) ^ (v0 >> 7)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	for i := 0; i < 80; i++ {
		sum1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
		ch := (e & f) ^ (^e & g)
		t1 := h + sum1 + ch + k[i] + w[i]

		sum0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := sum0 + maj

		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	for i, v := range [8]uint64{a, b, c, d, e, f, g, h} {
		s[i] += v
	}
	return s
}

// Sum returns the SHA-512 digest of msg.  The length field is 128 bits wide.
func Sum(msg []byte) [Size]byte {
	buf := pad.Pad(msg, BlockSize, 16, binary.BigEndian)

	s := iv
	for len(buf) > 0 {
		s = Compress(s, (*[BlockSize]byte)(buf))
		buf = buf[BlockSize:]
	}

	var out [Size]byte
	utils.PutUint64sBE(out[:], s[:])
	return out
}
