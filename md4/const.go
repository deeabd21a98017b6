// const.go - RFC 1320 constants

package md4

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476

	// Round 2 and 3 additive constants, sqrt(2) and sqrt(3) scaled by 2^30.
	k2 = 0x5a827999
	k3 = 0x6ed9eba1
)

var iv = State{init0, init1, init2, init3}

// Round 3 visits the message words in bit-reversed order; each entry is the
// first word of a group of four, with the rest at +8, +4 and +12.
var round3Order = [4]int{0, 2, 1, 3}
