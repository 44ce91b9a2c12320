package cardano

import (
	"fmt"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
	"github.com/opd-ai/twkeypair/zeroize"
)

var (
	_ keypair.SigningKey[[]byte, ed25519.Signature]   = (*PrivateKey)(nil)
	_ keypair.VerifyingKey[[]byte, ed25519.Signature] = (*PublicKey)(nil)
	_ keypair.KeyPair[*PrivateKey, *PublicKey]        = (*KeyPair)(nil)
)

// PrivateKey is an extended private key, optionally followed by a staking
// key.
type PrivateKey struct {
	spending *extendedPrivate
	staking  *extendedPrivate
}

// PrivateKeyFromBytes accepts a 96-byte extended key or a 192-byte
// spending ‖ staking pair. b is copied.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	switch len(b) {
	case PrivateKeySize:
		spending, err := newExtendedPrivate(b)
		if err != nil {
			return nil, err
		}
		return &PrivateKey{spending: spending}, nil
	case DoublePrivateKeySize:
		spending, err := newExtendedPrivate(b[:PrivateKeySize])
		if err != nil {
			return nil, err
		}
		staking, err := newExtendedPrivate(b[PrivateKeySize:])
		if err != nil {
			spending.wipe()
			return nil, fmt.Errorf("staking key: %w", err)
		}
		return &PrivateKey{spending: spending, staking: staking}, nil
	default:
		return nil, fmt.Errorf("%w: cardano key must be %d or %d bytes, got %d",
			keypair.ErrInvalidSecretKey, PrivateKeySize, DoublePrivateKeySize, len(b))
	}
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

// HasStaking reports whether the key carries a staking half.
func (k *PrivateKey) HasStaking() bool { return k.staking != nil }

// Public returns the matching public key, with a staking half when the
// private key has one.
func (k *PrivateKey) Public() *PublicKey {
	pub := &PublicKey{spending: k.spending.publicKey()}
	if k.staking != nil {
		pub.staking = k.staking.publicKey()
	}
	return pub
}

// Bytes returns a copy of the full encoding, 96 or 192 bytes. The caller
// should wipe it.
func (k *PrivateKey) Bytes() []byte {
	out := k.spending.appendTo(make([]byte, 0, DoublePrivateKeySize))
	if k.staking != nil {
		out = k.staking.appendTo(out)
	}
	return out
}

// Sign signs message with the spending key.
func (k *PrivateKey) Sign(message []byte) (ed25519.Signature, error) {
	return k.spending.sign(message)
}

// Derive returns the child of the spending key at index. The child is a
// single 96-byte key; staking keys are derived on their own path.
func (k *PrivateKey) Derive(index uint32) (*PrivateKey, error) {
	child, err := k.spending.derive(index)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{spending: child}, nil
}

// Wipe zeroes both halves.
func (k *PrivateKey) Wipe() {
	if k == nil {
		return
	}
	k.spending.wipe()
	k.staking.wipe()
}

// PublicKey is an extended public key, optionally followed by a staking
// key.
type PublicKey struct {
	spending *extendedPublic
	staking  *extendedPublic
}

// PublicKeyFromBytes accepts a 64-byte extended public key or a 128-byte
// spending ‖ staking pair.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	switch len(b) {
	case PublicKeySize:
		spending, err := newExtendedPublic(b)
		if err != nil {
			return nil, err
		}
		return &PublicKey{spending: spending}, nil
	case DoublePublicKeySize:
		spending, err := newExtendedPublic(b[:PublicKeySize])
		if err != nil {
			return nil, err
		}
		staking, err := newExtendedPublic(b[PublicKeySize:])
		if err != nil {
			return nil, fmt.Errorf("staking key: %w", err)
		}
		return &PublicKey{spending: spending, staking: staking}, nil
	default:
		return nil, fmt.Errorf("%w: cardano public key must be %d or %d bytes, got %d",
			keypair.ErrInvalidPublicKey, PublicKeySize, DoublePublicKeySize, len(b))
	}
}

// PublicKeyFromHex decodes s and calls PublicKeyFromBytes.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	b, err := keypair.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return PublicKeyFromBytes(b)
}

// Bytes returns the full encoding, 64 or 128 bytes.
func (p *PublicKey) Bytes() []byte {
	out := p.spending.appendTo(make([]byte, 0, DoublePublicKeySize))
	if p.staking != nil {
		out = p.staking.appendTo(out)
	}
	return out
}

// Point returns the spending key's Edwards point.
func (p *PublicKey) Point() [ed25519.PublicKeySize]byte { return p.spending.point }

// ChainCode returns the spending key's chain code.
func (p *PublicKey) ChainCode() [ChainCodeSize]byte { return p.spending.chainCode }

// HasStaking reports whether the key carries a staking half.
func (p *PublicKey) HasStaking() bool { return p.staking != nil }

// Verify checks sig against the spending key.
func (p *PublicKey) Verify(sig ed25519.Signature, message []byte) bool {
	return p.spending.verify(sig, message)
}

// Derive returns the soft child of the spending key at index. Hardened
// indices fail with keypair.ErrInvalidPublicKey.
func (p *PublicKey) Derive(index uint32) (*PublicKey, error) {
	child, err := p.spending.derive(index)
	if err != nil {
		return nil, err
	}
	return &PublicKey{spending: child}, nil
}

// Equal reports whether both keys have identical encodings.
func (p *PublicKey) Equal(other *PublicKey) bool {
	if p == nil || other == nil {
		return p == other
	}
	if !p.spending.equal(other.spending) || (p.staking == nil) != (other.staking == nil) {
		return false
	}
	return p.staking == nil || p.staking.equal(other.staking)
}

// KeyPair bundles a private key with its public key.
type KeyPair struct {
	private *PrivateKey
}

// KeyPairFromBytes builds a key pair from a 96- or 192-byte private key.
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
