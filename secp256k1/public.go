package secp256k1

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	keypair "github.com/opd-ai/twkeypair"
)

const (
	// CompressedPublicKeySize is 0x02/0x03 ‖ x.
	CompressedPublicKeySize = 33

	// UncompressedPublicKeySize is 0x04 ‖ x ‖ y.
	UncompressedPublicKeySize = 65
)

var _ keypair.VerifyingKey[[DigestSize]byte, VerifySignature] = (*PublicKey)(nil)

// PublicKey is a point on secp256k1. Its canonical encoding is compressed.
type PublicKey struct {
	key *btcec.PublicKey
}

// PublicKeyFromBytes parses a 33-byte compressed or 65-byte uncompressed
// point.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	switch {
	case len(b) == CompressedPublicKeySize && (b[0] == 0x02 || b[0] == 0x03):
	case len(b) == UncompressedPublicKeySize && b[0] == 0x04:
	default:
		return nil, fmt.Errorf("%w: secp256k1 key must be %d or %d bytes with a matching prefix",
			keypair.ErrInvalidPublicKey, CompressedPublicKeySize, UncompressedPublicKeySize)
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return &PublicKey{key: key}, nil
}

// PublicKeyFromHex decodes s and calls PublicKeyFromBytes.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	b, err := keypair.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return PublicKeyFromBytes(b)
}

// Compressed returns the 33-byte encoding.
func (p *PublicKey) Compressed() [CompressedPublicKeySize]byte {
	return [CompressedPublicKeySize]byte(p.key.SerializeCompressed())
}

// Uncompressed returns the 65-byte encoding.
func (p *PublicKey) Uncompressed() [UncompressedPublicKeySize]byte {
	return [UncompressedPublicKeySize]byte(p.key.SerializeUncompressed())
}

// Bytes returns the canonical (compressed) encoding.
func (p *PublicKey) Bytes() []byte {
	return p.key.SerializeCompressed()
}

// Equal reports whether p and other are the same point.
func (p *PublicKey) Equal(other *PublicKey) bool {
	if p == nil || other == nil {
		return p == other
	}
	return bytes.Equal(p.Bytes(), other.Bytes())
}

// Verify checks sig over digest. High-S signatures are rejected, matching
// what Sign produces.
func (p *PublicKey) Verify(sig VerifySignature, digest [DigestSize]byte) bool {
	if p == nil || p.key == nil {
		return false
	}
	var r, s btcec.ModNScalar
	if r.SetBytes(&sig.r) != 0 || s.SetBytes(&sig.s) != 0 {
		return false
	}
	if r.IsZero() || s.IsZero() || s.IsOverHalfOrder() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], p.key)
}

// VerifyBytes is Verify over raw slices: sig is 64 or 65 bytes and digest
// must be 32 bytes. Malformed input is simply not a valid signature.
func (p *PublicKey) VerifyBytes(sig, digest []byte) bool {
	if len(digest) != DigestSize {
		return false
	}
	vs, err := VerifySignatureFromBytes(sig)
	if err != nil {
		return false
	}
	return p.Verify(vs, [DigestSize]byte(digest))
}
