// hashes.go - algorithm registry

// Package hashes provides bit-exact implementations of MD4, MD5, SHA-1,
// SHA-256, SHA-512, RIPEMD-160 and BLAKE2b, along with BLAKE-256 and
// BLAKE-512, behind a name based registry.
//
// Every function is a pure function of its arguments.  Each call owns its
// state, so any number of calls may run concurrently.
package hashes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yawning/hashes/blake"
	"github.com/yawning/hashes/blake2b"
	"github.com/yawning/hashes/md4"
	"github.com/yawning/hashes/md5"
	"github.com/yawning/hashes/ripemd160"
	"github.com/yawning/hashes/sha1"
	"github.com/yawning/hashes/sha256"
	"github.com/yawning/hashes/sha512"
	"github.com/yawning/hashes/utils"
)

// ErrUnknownAlgorithm is returned by Lookup for names not in the registry.
var ErrUnknownAlgorithm = errors.New("hashes: unknown algorithm")

// Digest is the output of a hash computation.
type Digest []byte

// String returns the digest as lowercase hexadecimal.
func (d Digest) String() string {
	return utils.Hex(d)
}

// Len returns the digest length in bytes.
func (d Digest) Len() int {
	return len(d)
}

// Algorithm describes a registered hash function.
type Algorithm struct {
	// Name is the canonical registry name.
	Name string

	// Size is the digest length in bytes.
	Size int

	// BlockSize is the compression function block size in bytes.
	BlockSize int

	sum func([]byte) []byte
}

// Sum returns the digest of msg.
func (a *Algorithm) Sum(msg []byte) Digest {
	return Digest(a.sum(msg))
}

func (a *Algorithm) String() string {
	return a.Name
}

var (
	registry = make(map[string]*Algorithm)
	aliases  = map[string]string{
		"blake2b512": "blake2b",
		"rmd160":     "ripemd160",
	}
)

func register(a *Algorithm) {
	if _, ok := registry[a.Name]; ok {
		panic("hashes: duplicate registration of " + a.Name)
	}
	registry[a.Name] = a
}

// normalize folds case and drops the separators people put in algorithm
// names, so "SHA-256" and "sha_256" both become "sha256".
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", "/", "").Replace(name)
}

// Lookup returns the registered algorithm for name.
func Lookup(name string) (*Algorithm, error) {
	n := normalize(name)
	if canonical, ok := aliases[n]; ok {
		n = canonical
	}
	a, ok := registry[n]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Algorithms returns the sorted canonical names of every registered
// algorithm.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum hashes msg with the algorithm registered as name.
func Sum(name string, msg []byte) (Digest, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return a.Sum(msg), nil
}

// SumBLAKE2b returns the size byte BLAKE2b digest of msg keyed with key.
// Errors wrap blake2b.ErrConfiguration.
func SumBLAKE2b(msg, key []byte, size int) (Digest, error) {
	d, err := blake2b.Sum(msg, key, size)
	if err != nil {
		return nil, err
	}
	return Digest(d), nil
}

func init() {
	register(&Algorithm{Name: "md4", Size: md4.Size, BlockSize: md4.BlockSize, sum: func(m []byte) []byte {
		d := md4.Sum(m)
		return d[:]
	}})
	register(&Algorithm{Name: "md5", Size: md5.Size, BlockSize: md5.BlockSize, sum: func(m []byte) []byte {
		d := md5.Sum(m)
		return d[:]
	}})
	register(&Algorithm{Name: "sha1", Size: sha1.Size, BlockSize: sha1.BlockSize, sum: func(m []byte) []byte {
		d := sha1.Sum(m)
		return d[:]
	}})
	register(&Algorithm{Name: "sha256", Size: sha256.Size, BlockSize: sha256.BlockSize, sum: func(m []byte) []byte {
		d := sha256.Sum(m)
		return d[:]
	}})
	register(&Algorithm{Name: "sha512", Size: sha512.Size, BlockSize: sha512.BlockSize, sum: func(m []byte) []byte {
		d := sha512.Sum(m)
		return d[:]
	}})
	register(&Algorithm{Name: "ripemd160", Size: ripemd160.Size, BlockSize: ripemd160.BlockSize, sum: func(m []byte) []byte {
		d := ripemd160.Sum(m)
		return d[:]
	}})
	register(&Algorithm{Name: "blake2b", Size: blake2b.Size, BlockSize: blake2b.BlockSize, sum: func(m []byte) []byte {
		d := blake2b.Sum512(m)
		return d[:]
	}})
	register(&Algorithm{Name: "blake2b256", Size: blake2b.Size256, BlockSize: blake2b.BlockSize, sum: func(m []byte) []byte {
		d := blake2b.Sum256(m)
		return d[:]
	}})
	register(&Algorithm{Name: "blake256", Size: blake.Size256, BlockSize: blake.BlockSize256, sum: func(m []byte) []byte {
		d := blake.Sum256(m)
		return d[:]
	}})
	register(&Algorithm{Name: "blake512", Size: blake.Size512, BlockSize: blake.BlockSize512, sum: func(m []byte) []byte {
		d := blake.Sum512(m)
		return d[:]
	}})
}
