// sha1.go - FIPS 180-4 section 6.1

// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS 180-4.
package sha1

import (
	"encoding/binary"
	"math/bits"

	"github.com/yawning/hashes/pad"
	"github.com/yawning/hashes/utils"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize is the SHA-1 block size in bytes.
	BlockSize = 64
)

// State is the SHA-1 chaining value, H0 through H4.
type State [5]uint32

// Compress expands one block into the 80 word schedule, runs the 80 steps
// and returns the new chaining value.
func Compress(s State, block *[BlockSize]byte) State {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	for i := 0; i < 80; i++ {
		f, k := round(i, b, c, d)
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	return s
}

// round returns the boolean function value and additive constant for step i.
func round(i int, b, c, d uint32) (uint32, uint32) {
	switch {
	case i < 20:
		return (b & c) | (^b & d), k0
	case i < 40:
		return b ^ c ^ d, k1
	case i < 60:
		return (b & c) | (b & d) | (c & d), k2
	default:
		return b ^ c ^ d, k3
	}
}

// Sum returns the SHA-1 digest of msg.
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
