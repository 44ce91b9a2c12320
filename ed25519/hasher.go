package ed25519

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Hasher selects the 512-bit hash used for seed expansion, the nonce and the
// challenge.
type Hasher interface {
	New() hash.Hash
	Name() string
}

var (
	// SHA512 is the RFC 8032 hash.
	SHA512 Hasher = sha512Hasher{}

	// Blake2b512 is the hash of the Nano variant.
	Blake2b512 Hasher = blake2bHasher{}
)

type sha512Hasher struct{}

func (sha512Hasher) New() hash.Hash { return sha512.New() }

func (sha512Hasher) Name() string { return "sha512" }

type blake2bHasher struct{}

func (blake2bHasher) New() hash.Hash {
	// Only fails for keys longer than 64 bytes.
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	return h
}

func (blake2bHasher) Name() string { return "blake2b" }

// sum hashes the concatenation of parts into a 64-byte digest.
func sum(h Hasher, parts ...[]byte) [64]byte {
	d := h.New()
	for _, p := range parts {
		d.Write(p)
	}
	var out [64]byte
	d.Sum(out[:0])
	return out
}
