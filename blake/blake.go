// blake.go - BLAKE-256 and BLAKE-512 (SHA-3 finalist, final round tweak)
//
// Note: These are the original BLAKE functions, not BLAKE2.  They are kept
// for formats that predate BLAKE2 and are backed by the dchest packages
// rather than a local compression function.

// Package blake implements the BLAKE-256 and BLAKE-512 hash functions.
package blake

import (
	"github.com/dchest/blake256"
	"github.com/dchest/blake512"

	"github.com/yawning/hashes/utils"
)

const (
	// Size256 is the length of a BLAKE-256 digest in bytes.
	Size256 = blake256.Size

	// Size512 is the length of a BLAKE-512 digest in bytes.
	Size512 = blake512.Size

	// BlockSize256 is the BLAKE-256 block size in bytes.
	BlockSize256 = blake256.BlockSize

	// BlockSize512 is the BLAKE-512 block size in bytes.
	BlockSize512 = blake512.BlockSize
)

// Sum256 returns the BLAKE-256 digest of msg.
func Sum256(msg []byte) [Size256]byte {
	var out [Size256]byte
	h := blake256.New()
	h.Write(msg)
	tmp := h.Sum(nil)
	copy(out[:], tmp)
	utils.Zerobytes(tmp)
	return out
}

// Sum512 returns the BLAKE-512 digest of msg.
func Sum512(msg []byte) [Size512]byte {
	var out [Size512]byte
	h := blake512.New()
	h.Write(msg)
	tmp := h.Sum(nil)
	copy(out[:], tmp)
	utils.Zerobytes(tmp)
	return out
}
