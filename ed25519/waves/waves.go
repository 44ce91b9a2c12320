package waves

import (
	"bytes"
	"fmt"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/flynn/noise"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
	"github.com/opd-ai/twkeypair/logging"
	"github.com/opd-ai/twkeypair/zeroize"
)

// PublicKeySize is the length of a Montgomery u-coordinate.
const PublicKeySize = 32

// signBit is the top bit of byte 63 of a signature and byte 31 of an Edwards
// point encoding.
const signBit = 0x80

var (
	_ keypair.SigningKey[[]byte, ed25519.Signature]   = (*PrivateKey)(nil)
	_ keypair.VerifyingKey[[]byte, ed25519.Signature] = (*PublicKey)(nil)
	_ keypair.KeyPair[*PrivateKey, *PublicKey]        = (*KeyPair)(nil)
)

// PrivateKey is a 32-byte Ed25519 seed.
type PrivateKey struct {
	key *ed25519.SeedKey
}

// PrivateKeyFromBytes copies a 32-byte seed.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	key, err := ed25519.NewSeedKey(ed25519.SHA512, b)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex decodes s and calls PrivateKeyFromBytes.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := keypair.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidSecretKey, err)
	}
	defer zeroize.ZeroBytes(b)
	return PrivateKeyFromBytes(b)
}

// Public returns the Montgomery form of the Ed25519 public key.
func (k *PrivateKey) Public() *PublicKey {
	edPub := k.key.PublicKey()
	// The seed's point always decodes.
	p, _ := new(edwards25519.Point).SetBytes(edPub[:])
	return &PublicKey{u: [PublicKeySize]byte(p.BytesMontgomery())}
}

// Bytes returns a copy of the seed.
func (k *PrivateKey) Bytes() []byte { return k.key.Seed() }

// Sign produces an Ed25519 signature with the Edwards sign bit folded into
// byte 63.
func (k *PrivateKey) Sign(message []byte) (ed25519.Signature, error) {
	sig, err := k.key.Sign(message)
	if err != nil {
		return ed25519.Signature{}, err
	}
	edPub := k.key.PublicKey()
	sig[63] = sig[63]&^signBit | edPub[31]&signBit
	return sig, nil
}

// SharedKey runs X25519 between this key's scalar and peer.
func (k *PrivateKey) SharedKey(peer *PublicKey) ([32]byte, error) {
	if peer == nil {
		return [32]byte{}, fmt.Errorf("%w: nil peer key", keypair.ErrInvalidPublicKey)
	}
	scalar, err := k.key.ScalarBytes()
	if err != nil {
		return [32]byte{}, err
	}
	defer zeroize.ZeroBytes(scalar)

	shared, err := noise.DH25519.DH(scalar, peer.u[:])
	if err != nil {
		logging.NewLogger("waves", "SharedKey").
			WithError(err, "x25519").
			WithFields(logging.PublicPreview("peer", peer.u[:])).
			Warn("Key agreement rejected peer key")
		return [32]byte{}, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	defer zeroize.ZeroBytes(shared)
	return [32]byte(shared), nil
}

// Wipe zeroes the secret.
func (k *PrivateKey) Wipe() { k.key.Wipe() }

// PublicKey is a Curve25519 u-coordinate.
type PublicKey struct {
	u [PublicKeySize]byte
}

// PublicKeyFromBytes accepts a 32-byte u-coordinate whose birational image
// lies on the Edwards curve.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: waves key must be %d bytes, got %d",
			keypair.ErrInvalidPublicKey, PublicKeySize, len(b))
	}
	pub := &PublicKey{u: [PublicKeySize]byte(b)}
	if _, err := pub.edwards(0); err != nil {
		return nil, err
	}
	return pub, nil
}

// PublicKeyFromHex decodes s and calls PublicKeyFromBytes.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	b, err := keypair.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return PublicKeyFromBytes(b)
}

// Bytes returns the 32-byte Montgomery u-coordinate.
func (p *PublicKey) Bytes() []byte { return bytes.Clone(p.u[:]) }

// Verify rebuilds the Edwards key from u and the sign bit in sig, then runs
// standard Ed25519 verification.
func (p *PublicKey) Verify(sig ed25519.Signature, message []byte) bool {
	edPub, err := p.edwards(sig[63] & signBit)
	if err != nil {
		return false
	}
	sig[63] &^= signBit
	return ed25519.Verify(ed25519.SHA512, edPub, message, sig)
}

// edwards maps u to y = (u - 1) / (u + 1) and encodes it with the given sign
// bit.
func (p *PublicKey) edwards(sign byte) ([ed25519.PublicKeySize]byte, error) {
	var out [ed25519.PublicKeySize]byte
	u, err := new(field.Element).SetBytes(p.u[:])
	if err != nil {
		return out, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	one := new(field.Element).One()
	denominator := new(field.Element).Add(u, one)
	if denominator.Equal(new(field.Element).Zero()) == 1 {
		return out, fmt.Errorf("%w: u = -1 has no Edwards image", keypair.ErrInvalidPublicKey)
	}
	numerator := new(field.Element).Subtract(u, one)
	y := new(field.Element).Multiply(numerator, new(field.Element).Invert(denominator))

	copy(out[:], y.Bytes())
	out[31] |= sign
	if _, err := new(edwards25519.Point).SetBytes(out[:]); err != nil {
		return out, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return out, nil
}

// KeyPair bundles a private key with its public key.
type KeyPair struct {
	private *PrivateKey
}

// KeyPairFromBytes builds a key pair from a 32-byte seed.
func KeyPairFromBytes(b []byte) (*KeyPair, error) {
	priv, err := PrivateKeyFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: priv}, nil
}

// Private returns the private key.
func (kp *KeyPair) Private() *PrivateKey { return kp.private }

// Public returns the public key.
func (kp *KeyPair) Public() *PublicKey { return kp.private.Public() }

// Sign signs message with the private key.
func (kp *KeyPair) Sign(message []byte) (ed25519.Signature, error) { return kp.private.Sign(message) }

// Verify checks sig against the public key.
func (kp *KeyPair) Verify(sig ed25519.Signature, message []byte) bool {
	return kp.Public().Verify(sig, message)
}
