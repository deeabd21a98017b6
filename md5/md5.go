// md5.go - RFC 1321

// Package md5 implements the MD5 message digest algorithm as defined in
// RFC 1321.
package md5

import (
	"encoding/binary"
	"math/bits"

	"github.com/yawning/hashes/pad"
	"github.com/yawning/hashes/utils"
)

const (
	// Size is the length of an MD5 digest in bytes.
	Size = 16

	// BlockSize is the MD5 block size in bytes.
	BlockSize = 64
)

// State is the MD5 chaining value.
type State [4]uint32

// Compress runs the 64 MD5 steps over one block and returns the new chaining
// value.
func Compress(s State, block *[BlockSize]byte) State {
	var x [16]uint32
	for i := 0; i < len(x); i++ {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, d := s[0], s[1], s[2], s[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		f += a + k[i] + x[g]
		a, b, c, d = d, b+bits.RotateLeft32(f, shifts[i]), b, c
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	return s
}

// Sum returns the MD5 digest of msg.
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
