// zerobytes.go - scratch buffer wiping

// Package utils implements the word serialization and hex rendering shared by
// the digest algorithms, along with scratch buffer helpers.
package utils

// Zerobytes sets all the bytes in slice to 0x00.
func Zerobytes(r []byte) []byte {
	for i := 0; i < len(r); i++ {
		r[i] = 0
	}
	return r
}
