// ripemd160.go - RIPEMD-160 (Dobbertin, Bosselaers, Preneel)

// Package ripemd160 implements the RIPEMD-160 hash algorithm.
//
// The compression function runs two independent 80 step lines over the same
// block and combines them with the previous chaining value.
package ripemd160

import (
	"encoding/binary"
	"math/bits"

	"github.com/yawning/hashes/pad"
	"github.com/yawning/hashes/utils"
)

const (
	// Size is the length of a RIPEMD-160 digest in bytes.
	Size = 20

	// BlockSize is the RIPEMD-160 block size in bytes.
	BlockSize = 64
)

// State is the RIPEMD-160 chaining value, h0 through h4.
type State [5]uint32

// f is the non-linear function for step j, 0 <= j <= 79.  The groups are
// 0-15, 16-31, 32-47, 48-63 and 64-79.
func f(j int, x, y, z uint32) uint32 {
	switch j >> 4 {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

// Compress runs the left and right lines over one block and returns the new
// chaining value.
func Compress(h State, block *[BlockSize]byte) State {
	var x [16]uint32
	for i := 0; i < len(x); i++ {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	al, bl, cl, dl, el := h[0], h[1], h[2], h[3], h[4]
	ar, br, cr, dr, er := h[0], h[1], h[2], h[3], h[4]

	for j := 0; j < 80; j++ {
		t := bits.RotateLeft32(al+f(j, bl, cl, dl)+x[rl[j]]+kl[j>>4], sl[j]) + el
		al, el, dl, cl, bl = el, dl, bits.RotateLeft32(cl, 10), bl, t

		// The right line walks the functions in reverse.
		t = bits.RotateLeft32(ar+f(79-j, br, cr, dr)+x[rr[j]]+kr[j>>4], sr[j]) + er
		ar, er, dr, cr, br = er, dr, bits.RotateLeft32(cr, 10), br, t
	}

	return State{
		h[1] + cl + dr,
		h[2] + dl + er,
		h[3] + el + ar,
		h[4] + al + br,
		h[0] + bl + cr,
	}
}

// Sum returns the RIPEMD-160 digest of msg.
func Sum(msg []byte) [Size]byte {
	buf := pad.Pad(msg, BlockSize, 8, binary.LittleEndian)

	h := iv
	for len(buf) > 0 {
		h = Compress(h, (*[BlockSize]byte)(buf))
		buf = buf[BlockSize:]
	}

	var out [Size]byte
	utils.PutUint32sLE(out[:], h[:])
	return out
}
