// blake2b.go - RFC 7693

// Package blake2b implements the BLAKE2b hash algorithm as defined in
// RFC 7693, with optional keying and digest sizes from 1 to 64 bytes.
package blake2b

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/yawning/hashes/utils"
)

const (
	// Size is the maximum (and default) BLAKE2b digest length in bytes.
	Size = 64

	// Size256 is the length of a BLAKE2b-256 digest in bytes.
	Size256 = 32

	// BlockSize is the BLAKE2b block size in bytes.
	BlockSize = 128

	// MaxKeySize is the maximum key length in bytes.
	MaxKeySize = 64
)

var (
	// ErrConfiguration is the parent of every parameter validation error.
	ErrConfiguration = errors.New("blake2b: invalid configuration")

	// ErrSize is returned when the requested digest size is not in [1, 64].
	ErrSize = fmt.Errorf("%w: digest size must be between 1 and %d bytes", ErrConfiguration, Size)

	// ErrKeySize is returned when the key is longer than MaxKeySize.
	ErrKeySize = fmt.Errorf("%w: key must be at most %d bytes", ErrConfiguration, MaxKeySize)
)

// State is the BLAKE2b chaining value.
type State [8]uint64

func g(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] = v[a] + v[b] + x
	v[d] = bits.RotateLeft64(v[d]^v[a], -32)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -24)
	v[a] = v[a] + v[b] + y
	v[d] = bits.RotateLeft64(v[d]^v[a], -16)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -63)
}

// Compress mixes one block into h.  t0 and t1 are the low and high words of
// the byte counter including this block, and last marks the final block.
func Compress(h State, block *[BlockSize]byte, t0, t1 uint64, last bool) State {
	var m [16]uint64
	for i := 0; i < len(m); i++ {
		m[i] = binary.LittleEndian.Uint64(block[8*i:])
	}

	var v [16]uint64
	copy(v[:8], h[:])
	copy(v[8:], iv[:])
	v[12] ^= t0
	v[13] ^= t1
	if last {
		v[14] = ^v[14]
	}

	for r := 0; r < rounds; r++ {
		s := &sigma[r%10]
		for i, q := range mixes {
			g(&v, q[0], q[1], q[2], q[3], m[s[2*i]], m[s[2*i+1]])
		}
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
	return h
}

// Validate checks a key length and digest size without hashing anything.
func Validate(keyLen, size int) error {
	if size < 1 || size > Size {
		return ErrSize
	}
	if keyLen > MaxKeySize {
		return ErrKeySize
	}
	return nil
}

// Sum returns the size byte BLAKE2b digest of msg, keyed with key when it is
// non-empty.  Invalid parameters are rejected before any compression.
func Sum(msg, key []byte, size int) ([]byte, error) {
	if err := Validate(len(key), size); err != nil {
		return nil, err
	}

	h := iv
	h[0] ^= 0x01010000 | uint64(len(key))<<8 | uint64(size)

	var t0, t1 uint64
	add := func(n int) {
		t0 += uint64(n)
		if t0 < uint64(n) {
			t1++
		}
	}

	var block [BlockSize]byte
	if len(key) > 0 {
		copy(block[:], key)
		add(BlockSize)
		h = Compress(h, &block, t0, t1, len(msg) == 0)
		utils.Zerobytes(block[:])
		if len(msg) == 0 {
			return output(&h, size), nil
		}
	}

	for len(msg) > BlockSize {
		add(BlockSize)
		h = Compress(h, (*[BlockSize]byte)(msg), t0, t1, false)
		msg = msg[BlockSize:]
	}

	// The tail is zero filled, but the counter only covers real bytes.
	n := copy(block[:], msg)
	add(n)
	h = Compress(h, &block, t0, t1, true)

	return output(&h, size), nil
}

func output(h *State, size int) []byte {
	out := make([]byte, size)
	utils.PutUint64sLE(out, h[:])
	return out
}

// Sum512 returns the unkeyed 64 byte BLAKE2b digest of msg.
func Sum512(msg []byte) [Size]byte {
	var out [Size]byte
	d, _ := Sum(msg, nil, Size)
	copy(out[:], d)
	return out
}

// Sum256 returns the unkeyed 32 byte BLAKE2b digest of msg.
func Sum256(msg []byte) [Size256]byte {
	var out [Size256]byte
	d, _ := Sum(msg, nil, Size256)
	copy(out[:], d)
	return out
}
