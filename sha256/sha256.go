// sha256.go - FIPS 180-4 section 6.2

// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4.
package sha256

import (
	"encoding/binary"
	"math/bits"

	"github.com/yawning/hashes/pad"
	"github.com/yawning/hashes/utils"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the SHA-256 block size in bytes.
	BlockSize = 64
)

// State is the SHA-256 chaining value.
type State [8]uint32

// Compress runs the SHA-256 compression function over one block and returns
// the new chaining value.
func Compress(s State, block *[BlockSize]byte) State {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		s1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v0 := w[i-15]
		s0 := bits.RotateLeft32(v0, -7) ^ bits.RotateLeft32(v0, -18) ^ (v0 >> 3)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	for i := 0; i < 64; i++ {
		sum1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + sum1 + ch + k[i] + w[i]

		sum0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := sum0 + maj

		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h
	return s
}

// Sum returns the SHA-256 digest of msg.
func Sum(msg []byte) [Size]byte {
	buf := pad.Pad(msg, BlockSize, 8, binary.BigEndian)

	s := iv
	for len(buf) > 0 {
		s = Compress(s, (*[BlockSize]byte)(buf))
		buf = buf[BlockSize:]
	}

	var out [Size]byte
	utils.PutUint32sBE(out[:], s[:])
	return out
}
