// sha1_test.go - SHA-1 tests

package sha1

import (
	stdsha1 "crypto/sha1"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yawning/hashes/utils"
)

func TestVectors(t *testing.T) {
	vectors := []struct {
		in, out string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
		{strings.Repeat("a", 1000000), "34aa973cd4c4daa4f61eeb2bdbad27316534016f"},
	}
	for _, v := range vectors {
		d := Sum([]byte(v.in))
		require.Equal(t, v.out, utils.Hex(d[:]), "SHA1 of %d bytes", len(v.in))
	}
}

func TestAgainstStdlib(t *testing.T) {
	msg := make([]byte, 300)
	for i := range msg {
		msg[i] = byte(i ^ 0x5c)
	}
	for n := 0; n <= len(msg); n++ {
		require.Equal(t, stdsha1.Sum(msg[:n]), Sum(msg[:n]), "length %d", n)
	}
}

func TestRoundSelection(t *testing.T) {
	for i, want := range map[int]uint32{0: k0, 19: k0, 20: k1, 39: k1, 40: k2, 59: k2, 60: k3, 79: k3} {
		_, k := round(i, 0, 0, 0)
		assert.Equal(t, want, k, "step %d", i)
	}
}

func TestBitFlip(t *testing.T) {
	a := Sum([]byte{0x00, 0x01})
	b := Sum([]byte{0x00, 0x03})
	require.NotEqual(t, a, b)
}
