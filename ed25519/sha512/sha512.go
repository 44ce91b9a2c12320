// Package sha512 provides standard RFC 8032 Ed25519 keys.
package sha512

import (
	"bytes"
	"fmt"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
)

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
	defer clear(b)
	return PrivateKeyFromBytes(b)
}

// Public returns the public key.
func (k *PrivateKey) Public() *PublicKey { return &PublicKey{point: k.key.PublicKey()} }

// Bytes returns a copy of the seed.
func (k *PrivateKey) Bytes() []byte { return k.key.Seed() }

// Sign signs message.
func (k *PrivateKey) Sign(message []byte) (ed25519.Signature, error) { return k.key.Sign(message) }

// Wipe zeroes the secret.
func (k *PrivateKey) Wipe() { k.key.Wipe() }

// PublicKey is an encoded Edwards point.
type PublicKey struct {
	point [ed25519.PublicKeySize]byte
}

// PublicKeyFromBytes accepts a 32-byte point encoding.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if err := ed25519.ValidatePublicKey(b); err != nil {
		return nil, err
	}
	return &PublicKey{point: [ed25519.PublicKeySize]byte(b)}, nil
}

// PublicKeyFromHex decodes s and calls PublicKeyFromBytes.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	b, err := keypair.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return PublicKeyFromBytes(b)
}

// Bytes returns the 32-byte encoding.
func (p *PublicKey) Bytes() []byte { return bytes.Clone(p.point[:]) }

// Verify reports whether sig is valid for message.
func (p *PublicKey) Verify(sig ed25519.Signature, message []byte) bool {
	return ed25519.Verify(ed25519.SHA512, p.point, message, sig)
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
