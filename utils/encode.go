// encode.go - digest serialization

package utils

import (
	"encoding/binary"
	"encoding/hex"
)

// PutUint32sLE writes each word of s to dst in little-endian order.  dst must
// be at least 4*len(s) bytes.
func PutUint32sLE(dst []byte, s []uint32) {
	for i, v := range s {
		binary.LittleEndian.PutUint32(dst[4*i:], v)
	}
}

// PutUint32sBE writes each word of s to dst in big-endian order.
func PutUint32sBE(dst []byte, s []uint32) {
	for i, v := range s {
		binary.BigEndian.PutUint32(dst[4*i:], v)
	}
}

// PutUint64sLE writes each word of s to dst in little-endian order.  Output
// past len(dst) is discarded, which is how BLAKE2b truncates its digest.
func PutUint64sLE(dst []byte, s []uint64) {
	var tmp [8]byte
	for i, v := range s {
		off := 8 * i
		if off >= len(dst) {
			return
		}
		binary.LittleEndian.PutUint64(tmp[:], v)
		copy(dst[off:], tmp[:])
	}
}

// PutUint64sBE writes each word of s to dst in big-endian order.
func PutUint64sBE(dst []byte, s []uint64) {
	for i, v := range s {
		binary.BigEndian.PutUint64(dst[8*i:], v)
	}
}

// Hex renders b as lowercase hexadecimal, two characters per byte.
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}
