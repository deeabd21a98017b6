// const.go - FIPS 180-4 SHA-1 constants

package sha1

var iv = State{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

const (
	k0 = 0x5a827999 // steps 0-19
	k1 = 0x6ed9eba1 // steps 20-39
	k2 = 0x8f1bbcdc // steps 40-59
	k3 = 0xca62c1d6 // steps 60-79
)
