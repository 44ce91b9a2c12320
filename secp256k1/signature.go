package secp256k1

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	keypair "github.com/opd-ai/twkeypair"
)

const (
	// SignatureSize is r ‖ s ‖ v.
	SignatureSize = 65

	// VerifySignatureSize is r ‖ s.
	VerifySignatureSize = 64
)

// Signature is a recoverable ECDSA signature. V is the recovery id, 0 or 1.
type Signature struct {
	r, s [32]byte
	v    byte
}

// SignatureFromBytes parses exactly 65 bytes of r ‖ s ‖ v.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, fmt.Errorf("%w: secp256k1 signature must be %d bytes, got %d",
			keypair.ErrInvalidSignature, SignatureSize, len(b))
	}
	var sig Signature
	copy(sig.r[:], b[:32])
	copy(sig.s[:], b[32:64])
	sig.v = b[64]
	return sig, nil
}

// R returns the r component.
func (sig Signature) R() [32]byte { return sig.r }

// S returns the s component.
func (sig Signature) S() [32]byte { return sig.s }

// V returns the recovery id.
func (sig Signature) V() byte { return sig.v }

// Bytes returns r ‖ s ‖ v.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, SignatureSize)
	out = append(out, sig.r[:]...)
	out = append(out, sig.s[:]...)
	return append(out, sig.v)
}

// ToVerifySignature drops the recovery id.
func (sig Signature) ToVerifySignature() VerifySignature {
	return VerifySignature{r: sig.r, s: sig.s}
}

// RecoverPublicKey returns the key that produced sig over digest.
func (sig Signature) RecoverPublicKey(digest [DigestSize]byte) (*PublicKey, error) {
	if sig.v > 3 {
		return nil, fmt.Errorf("%w: recovery id %d out of range", keypair.ErrInvalidSignature, sig.v)
	}
	compact := make([]byte, SignatureSize)
	compact[0] = compactHeaderBase + sig.v
	copy(compact[1:33], sig.r[:])
	copy(compact[33:], sig.s[:])

	key, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidSignature, err)
	}
	return &PublicKey{key: key}, nil
}

// VerifySignature is the r ‖ s part of a signature, used for verification.
type VerifySignature struct {
	r, s [32]byte
}

// VerifySignatureFromBytes accepts r ‖ s (64 bytes) or r ‖ s ‖ v (65 bytes,
// v ignored).
func VerifySignatureFromBytes(b []byte) (VerifySignature, error) {
	if len(b) != VerifySignatureSize && len(b) != SignatureSize {
		return VerifySignature{}, fmt.Errorf("%w: secp256k1 verify signature must be %d or %d bytes, got %d",
			keypair.ErrInvalidSignature, VerifySignatureSize, SignatureSize, len(b))
	}
	var vs VerifySignature
	copy(vs.r[:], b[:32])
	copy(vs.s[:], b[32:64])
	return vs, nil
}

// Bytes returns r ‖ s.
func (vs VerifySignature) Bytes() []byte {
	out := make([]byte, 0, VerifySignatureSize)
	out = append(out, vs.r[:]...)
	return append(out, vs.s[:]...)
}
