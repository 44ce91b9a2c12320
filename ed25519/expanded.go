package ed25519

import (
	"crypto/subtle"
	"fmt"

	"filippo.io/edwards25519"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/zeroize"
)

const (
	// SeedSize is the length of a standard secret seed.
	SeedSize = 32

	// PublicKeySize is the length of a compressed Edwards point.
	PublicKeySize = 32
)

// ExpandedSecret is the signing state derived from a secret: the scalar a and
// the 32-byte nonce prefix.
type ExpandedSecret struct {
	scalar *edwards25519.Scalar
	prefix [32]byte
}

// Expand hashes a 32-byte seed with h, clamps the low half into the scalar
// and keeps the high half as the nonce prefix.
func Expand(h Hasher, seed []byte) (*ExpandedSecret, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d",
			keypair.ErrInvalidSecretKey, SeedSize, len(seed))
	}
	digest := sum(h, seed)
	defer zeroize.ZeroBytes(digest[:])

	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(digest[:32])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidSecretKey, err)
	}
	e := &ExpandedSecret{scalar: scalar}
	copy(e.prefix[:], digest[32:])
	return e, nil
}

// NewExpandedSecret builds the signing state from an already expanded
// little-endian scalar and its nonce prefix, as Cardano keys store them. The
// scalar is used as is and reduced modulo the group order.
func NewExpandedSecret(scalar, prefix []byte) (*ExpandedSecret, error) {
	if len(scalar) != 32 || len(prefix) != 32 {
		return nil, fmt.Errorf("%w: expanded secret halves must be 32 bytes", keypair.ErrInvalidSecretKey)
	}
	var wide [64]byte
	defer zeroize.ZeroBytes(wide[:])
	copy(wide[:], scalar)

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidSecretKey, err)
	}
	e := &ExpandedSecret{scalar: s}
	copy(e.prefix[:], prefix)
	return e, nil
}

// PublicKey returns the encoding of a·B.
func (e *ExpandedSecret) PublicKey() [PublicKeySize]byte {
	return [PublicKeySize]byte(new(edwards25519.Point).ScalarBaseMult(e.scalar).Bytes())
}

// Sign produces an EdDSA signature over message. pub must be the encoding
// of this secret's public key.
func (e *ExpandedSecret) Sign(h Hasher, pub [PublicKeySize]byte, message []byte) Signature {
	nonceDigest := sum(h, e.prefix[:], message)
	defer zeroize.ZeroBytes(nonceDigest[:])
	r, err := edwards25519.NewScalar().SetUniformBytes(nonceDigest[:])
	if err != nil {
		panic("ed25519: internal error: " + err.Error())
	}
	R := new(edwards25519.Point).ScalarBaseMult(r)

	var sig Signature
	copy(sig[:32], R.Bytes())

	k := challenge(h, sig[:32], pub[:], message)
	S := edwards25519.NewScalar().MultiplyAdd(k, e.scalar, r)
	copy(sig[32:], S.Bytes())

	r.Set(edwards25519.NewScalar())
	return sig
}

// Wipe zeroes the scalar and the nonce prefix.
func (e *ExpandedSecret) Wipe() {
	if e == nil {
		return
	}
	if e.scalar != nil {
		e.scalar.Set(edwards25519.NewScalar())
	}
	zeroize.ZeroBytes(e.prefix[:])
}

// Verify checks sig over message against the encoded point pub using the
// cofactorless equation [S]B = R + [k]A. Non-canonical S is rejected.
func Verify(h Hasher, pub [PublicKeySize]byte, message []byte, sig Signature) bool {
	A, err := new(edwards25519.Point).SetBytes(pub[:])
	if err != nil {
		return false
	}
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}
	k := challenge(h, sig[:32], pub[:], message)

	minusA := new(edwards25519.Point).Negate(A)
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, S)
	return subtle.ConstantTimeCompare(sig[:32], R.Bytes()) == 1
}

// ValidatePublicKey reports whether pub decodes to a curve point.
func ValidatePublicKey(pub []byte) error {
	if len(pub) != PublicKeySize {
		return fmt.Errorf("%w: ed25519 key must be %d bytes, got %d",
			keypair.ErrInvalidPublicKey, PublicKeySize, len(pub))
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return nil
}

func challenge(h Hasher, R, A, message []byte) *edwards25519.Scalar {
	digest := sum(h, R, A, message)
	k, err := edwards25519.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic("ed25519: internal error: " + err.Error())
	}
	return k
}
