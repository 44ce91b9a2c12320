package secp256k1

import (
	keypair "github.com/opd-ai/twkeypair"
)

var _ keypair.KeyPair[*PrivateKey, *PublicKey] = (*KeyPair)(nil)

// KeyPair bundles a private key with its derived public key.
type KeyPair struct {
	private *PrivateKey
}

// KeyPairFromBytes builds a key pair from a 32-byte secret.
func KeyPairFromBytes(b []byte) (*KeyPair, error) {
	priv, err := PrivateKeyFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: priv}, nil
}

// KeyPairFromHex builds a key pair from a hex secret.
func KeyPairFromHex(s string) (*KeyPair, error) {
	priv, err := PrivateKeyFromHex(s)
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: priv}, nil
}

// Private returns the private key.
func (kp *KeyPair) Private() *PrivateKey { return kp.private }

// Public returns the public key.
func (kp *KeyPair) Public() *PublicKey { return kp.private.Public() }

// Sign signs digest with the private half.
func (kp *KeyPair) Sign(digest [DigestSize]byte) (Signature, error) {
	return kp.private.Sign(digest)
}

// Verify checks sig with the public half.
func (kp *KeyPair) Verify(sig VerifySignature, digest [DigestSize]byte) bool {
	return kp.Public().Verify(sig, digest)
}

// Wipe zeroes the private half.
func (kp *KeyPair) Wipe() { kp.private.Wipe() }
