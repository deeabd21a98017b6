// md4.go - RFC 1320

// Package md4 implements the MD4 message digest algorithm as defined in
// RFC 1320.
//
// MD4 is cryptographically broken and is only provided for interoperability
// with legacy formats.
package md4

import (
	"encoding/binary"
	"math/bits"

	"github.com/yawning/hashes/pad"
	"github.com/yawning/hashes/utils"
)

const (
	// Size is the length of an MD4 digest in bytes.
	Size = 16

	// BlockSize is the MD4 block size in bytes.
	BlockSize = 64
)

// State is the MD4 chaining value, the A, B, C and D accumulators.
type State [4]uint32

// Compress runs the MD4 compression function over one block and returns the
// new chaining value.
func Compress(s State, block *[BlockSize]byte) State {
	var x [16]uint32
	for i := 0; i < len(x); i++ {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, d := s[0], s[1], s[2], s[3]

	// Round 1: F(x,y,z) = xy | ~xz.
	for i := 0; i < 16; i += 4 {
		a = bits.RotateLeft32(a+((b&c)|(^b&d))+x[i], 3)
		d = bits.RotateLeft32(d+((a&b)|(^a&c))+x[i+1], 7)
		c = bits.RotateLeft32(c+((d&a)|(^d&b))+x[i+2], 11)
		b = bits.RotateLeft32(b+((c&d)|(^c&a))+x[i+3], 19)
	}

	// Round 2: G(x,y,z) = xy | xz | yz.
	for i := 0; i < 4; i++ {
		a = bits.RotateLeft32(a+((b&c)|(b&d)|(c&d))+x[i]+k2, 3)
		d = bits.RotateLeft32(d+((a&b)|(a&c)|(b&c))+x[i+4]+k2, 5)
		c = bits.RotateLeft32(c+((d&a)|(d&b)|(a&b))+x[i+8]+k2, 9)
		b = bits.RotateLeft32(b+((c&d)|(c&a)|(d&a))+x[i+12]+k2, 13)
	}

	// Round 3: H(x,y,z) = x ^ y ^ z.
	for _, i := range round3Order {
		a = bits.RotateLeft32(a+(b^c^d)+x[i]+k3, 3)
		d = bits.RotateLeft32(d+(a^b^c)+x[i+8]+k3, 9)
		c = bits.RotateLeft32(c+(d^a^b)+x[i+4]+k3, 11)
		b = bits.RotateLeft32(b+(c^d^a)+x[i+12]+k3, 15)
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	return s
}

// Sum returns the MD4 digest of msg.
func Sum(msg []byte) [Size]byte {
	buf := pad.Pad(msg, BlockSize, 8, binary.LittleEndian)

	s := iv
	for len(buf) > 0 {
		s = Compress(s, (*[BlockSize]byte)(buf))
		buf = buf[BlockSize:]
	}

	var out [Size]byte
	utils.PutUint32sLE(out[:], s[:])
	return out
}
