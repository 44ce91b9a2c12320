package ed25519

import (
	"fmt"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/zeroize"
)

// SeedKey is a 32-byte secret seed bound to a hasher. The expanded scalar is
// recomputed for every signature and wiped right after.
type SeedKey struct {
	hasher Hasher
	seed   *zeroize.Bytes
	public [PublicKeySize]byte
}

// NewSeedKey copies seed and derives its public key with h.
func NewSeedKey(h Hasher, seed []byte) (*SeedKey, error) {
	e, err := Expand(h, seed)
	if err != nil {
		return nil, err
	}
	defer e.Wipe()
	return &SeedKey{hasher: h, seed: zeroize.New(seed), public: e.PublicKey()}, nil
}

// PublicKey returns the encoded Edwards point for the seed.
func (k *SeedKey) PublicKey() [PublicKeySize]byte { return k.public }

// Seed returns a copy of the seed. The caller should wipe it.
func (k *SeedKey) Seed() []byte {
	out := make([]byte, k.seed.Len())
	copy(out, k.seed.Expose())
	return out
}

// Sign signs message with the expanded seed.
func (k *SeedKey) Sign(message []byte) (Signature, error) {
	if k == nil || k.seed.Len() != SeedSize {
		return Signature{}, fmt.Errorf("%w: ed25519 key has been wiped", keypair.ErrInvalidSecretKey)
	}
	e, err := Expand(k.hasher, k.seed.Expose())
	if err != nil {
		return Signature{}, err
	}
	defer e.Wipe()
	return e.Sign(k.hasher, k.public, message), nil
}

// ScalarBytes returns the clamped low half of the expanded seed. X25519
// callers use it as their private scalar; the caller should wipe it.
func (k *SeedKey) ScalarBytes() ([]byte, error) {
	if k == nil || k.seed.Len() != SeedSize {
		return nil, fmt.Errorf("%w: ed25519 key has been wiped", keypair.ErrInvalidSecretKey)
	}
	digest := sum(k.hasher, k.seed.Expose())
	defer zeroize.ZeroBytes(digest[:])
	out := make([]byte, 32)
	copy(out, digest[:32])
	out[0] &= 248
	out[31] &= 127
	out[31] |= 64
	return out, nil
}

// Wipe zeroes the seed.
func (k *SeedKey) Wipe() {
	if k == nil {
		return
	}
	k.seed.Wipe()
}
