package ed25519

import (
	"fmt"

	keypair "github.com/opd-ai/twkeypair"
)

// SignatureSize is R(32) ‖ S(32).
const SignatureSize = 64

// Signature is an EdDSA signature shared by every ed25519 variant.
type Signature [SignatureSize]byte

// SignatureFromBytes requires exactly 64 bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, fmt.Errorf("%w: ed25519 signature must be %d bytes, got %d",
			keypair.ErrInvalidSignature, SignatureSize, len(b))
	}
	return Signature(b), nil
}

// R returns the encoded nonce point.
func (s Signature) R() [32]byte { return [32]byte(s[:32]) }

// S returns the encoded response scalar.
func (s Signature) S() [32]byte { return [32]byte(s[32:]) }

// Bytes returns a copy of the 64 signature bytes.
func (s Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out, s[:])
	return out
}
