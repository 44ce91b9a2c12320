package starkex

import (
	"fmt"

	keypair "github.com/opd-ai/twkeypair"
)

// SignatureSize is r ‖ s.
const SignatureSize = 2 * FeltSize

// Signature is a STARK ECDSA signature.
type Signature struct {
	r, s [FeltSize]byte
}

// SignatureFromBytes requires exactly 64 bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, fmt.Errorf("%w: starkex signature must be %d bytes, got %d",
			keypair.ErrInvalidSignature, SignatureSize, len(b))
	}
	var sig Signature
	copy(sig.r[:], b[:FeltSize])
	copy(sig.s[:], b[FeltSize:])
	return sig, nil
}

// R returns the r component.
func (sig Signature) R() [FeltSize]byte { return sig.r }

// S returns the s component.
func (sig Signature) S() [FeltSize]byte { return sig.s }

// Bytes returns r ‖ s.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, SignatureSize)
	out = append(out, sig.r[:]...)
	return append(out, sig.s[:]...)
}
