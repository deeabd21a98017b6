// sha256_test.go - SHA-256 tests

package sha256

import (
	stdsha256 "crypto/sha256"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yawning/hashes/utils"
)

func TestVectors(t *testing.T) {
	vectors := []struct {
		in, out string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
		{strings.Repeat("a", 1000000), "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
	}
	for _, v := range vectors {
		d := Sum([]byte(v.in))
		require.Equal(t, v.out, utils.Hex(d[:]), "SHA256 of %d bytes", len(v.in))
	}
}

func TestAgainstStdlib(t *testing.T) {
	msg := make([]byte, 300)
	for i := range msg {
		msg[i] = byte(i * 31)
	}
	for n := 0; n <= len(msg); n++ {
		require.Equal(t, stdsha256.Sum256(msg[:n]), Sum(msg[:n]), "length %d", n)
	}
}

func TestCompressChains(t *testing.T) {
	// Two blocks hashed by hand must match the driver.
	msg := []byte(strings.Repeat("0123456789", 6))
	buf := make([]byte, 128)
	copy(buf, msg)
	buf[len(msg)] = 0x80
	binary.BigEndian.PutUint64(buf[120:], uint64(len(msg))*8)

	s := Compress(iv, (*[BlockSize]byte)(buf[:64]))
	s = Compress(s, (*[BlockSize]byte)(buf[64:]))

	var got [Size]byte
	utils.PutUint32sBE(got[:], s[:])
	require.Equal(t, Sum(msg), got)
}

func TestBitFlip(t *testing.T) {
	msg := make([]byte, 64)
	base := Sum(msg)
	msg[63] ^= 0x80
	require.NotEqual(t, base, Sum(msg))
}
