// hashes_test.go - registry tests

package hashes

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yawning/hashes/blake2b"
)

func TestKnownVectors(t *testing.T) {
	vectors := []struct {
		name, in, out string
	}{
		{"md4", "abc", "a448017aaf21d8525fc10ae87aa6729d"},
		{"md5", "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"sha1", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha512", "", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
		{"ripemd160", "", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{"blake2b", "", "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"},
		{"blake2b256", "", "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{"blake256", "", "716f6e863f744b9ac22c97ec7b76ea5f5908bc5b2f67c61510bfc4751384ea7a"},
	}
	for _, v := range vectors {
		d, err := Sum(v.name, []byte(v.in))
		require.NoError(t, err)
		assert.Equal(t, v.out, d.String(), "%s(%q)", v.name, v.in)
	}
}

func TestSizes(t *testing.T) {
	want := map[string]int{
		"md4":        16,
		"md5":        16,
		"sha1":       20,
		"ripemd160":  20,
		"sha256":     32,
		"sha512":     64,
		"blake2b":    64,
		"blake2b256": 32,
		"blake256":   32,
		"blake512":   64,
	}
	require.Len(t, Algorithms(), len(want))
	for _, name := range Algorithms() {
		a, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, want[name], a.Size, name)
		for _, n := range []int{0, 1, 55, 56, 64, 111, 112, 128, 1000} {
			d := a.Sum(make([]byte, n))
			require.Equal(t, a.Size, d.Len(), "%s length %d", name, n)
			require.Len(t, d.String(), 2*a.Size)
		}
	}
}

func TestLookupAliases(t *testing.T) {
	for alias, name := range map[string]string{
		"SHA-256":     "sha256",
		"sha_512":     "sha512",
		" MD5 ":       "md5",
		"RIPEMD-160":  "ripemd160",
		"rmd160":      "ripemd160",
		"BLAKE2b-512": "blake2b",
		"blake2b-256": "blake2b256",
	} {
		a, err := Lookup(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, name, a.Name, alias)
		assert.Equal(t, name, a.String())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("sha3-256")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))

	_, err = Sum("crc32", nil)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestSumBLAKE2b(t *testing.T) {
	d, err := SumBLAKE2b(nil, nil, 64)
	require.NoError(t, err)
	plain, err := Sum("blake2b", nil)
	require.NoError(t, err)
	require.Equal(t, plain, d)

	for _, size := range []int{0, 65} {
		d, err = SumBLAKE2b(nil, nil, size)
		assert.Nil(t, d)
		assert.True(t, errors.Is(err, blake2b.ErrConfiguration), "size %d", size)
	}

	d, err = SumBLAKE2b(nil, make([]byte, 65), 64)
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, blake2b.ErrKeySize))
}

func TestDeterminism(t *testing.T) {
	msg := []byte("repeatable")
	for _, name := range Algorithms() {
		a, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, a.Sum(msg), a.Sum(msg), name)
	}
}

func TestSensitivity(t *testing.T) {
	msg := []byte("sensitivity")
	flipped := append([]byte(nil), msg...)
	flipped[3] ^= 0x04
	for _, name := range Algorithms() {
		a, err := Lookup(name)
		require.NoError(t, err)
		require.NotEqual(t, a.Sum(msg), a.Sum(flipped), name)
	}
}

func TestConcurrentUse(t *testing.T) {
	want := make(map[string]string)
	for _, name := range Algorithms() {
		d, err := Sum(name, []byte(name))
		require.NoError(t, err)
		want[name] = d.String()
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8*len(want))
	for i := 0; i < 8; i++ {
		for name := range want {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				d, err := Sum(name, []byte(name))
				if err == nil && d.String() != want[name] {
					err = fmt.Errorf("%s: got %s", name, d)
				}
				errs <- err
			}(name)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
