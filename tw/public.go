package tw

import (
	"fmt"

	"github.com/sirupsen/logrus"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
	"github.com/opd-ai/twkeypair/ed25519/blake2b"
	"github.com/opd-ai/twkeypair/ed25519/cardano"
	"github.com/opd-ai/twkeypair/ed25519/sha512"
	"github.com/opd-ai/twkeypair/logging"
	"github.com/opd-ai/twkeypair/secp256k1"
	"github.com/opd-ai/twkeypair/starkex"
)

// variant is implemented only by the per-curve adapters below, which keeps
// PublicKey a closed union.
type variant interface {
	verify(sig, message []byte) bool
	bytes() []byte
}

// PublicKey is a public key of one of the supported types.
type PublicKey struct {
	ty PublicKeyType
	v  variant
}

// PublicKeyFromBytes parses b as a key of type ty.
func PublicKeyFromBytes(b []byte, ty PublicKeyType) (*PublicKey, error) {
	v, err := parsePublic(b, ty)
	if err != nil {
		logging.NewLogger("tw", "PublicKeyFromBytes").
			WithError(err, "parse").
			WithFields(logging.PublicPreview("pubkey", b)).
			WithField("type", ty.String()).
			Warn("Rejected public key")
		return nil, err
	}
	return &PublicKey{ty: ty, v: v}, nil
}

func parsePublic(b []byte, ty PublicKeyType) (variant, error) {
	switch ty {
	case PublicKeyTypeSecp256k1:
		if len(b) != secp256k1.CompressedPublicKeySize {
			return nil, fmt.Errorf("%w: %s key must be %d bytes", keypair.ErrInvalidPublicKey, ty, secp256k1.CompressedPublicKeySize)
		}
		key, err := secp256k1.PublicKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
		return secp256k1Key{key: key}, nil
	case PublicKeyTypeSecp256k1Extended:
		if len(b) != secp256k1.UncompressedPublicKeySize {
			return nil, fmt.Errorf("%w: %s key must be %d bytes", keypair.ErrInvalidPublicKey, ty, secp256k1.UncompressedPublicKeySize)
		}
		key, err := secp256k1.PublicKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
		return secp256k1Key{key: key, extended: true}, nil
	case PublicKeyTypeEd25519:
		key, err := sha512.PublicKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
		return ed25519Key{key: key}, nil
	case PublicKeyTypeEd25519Blake2b:
		key, err := blake2b.PublicKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
		return blake2bKey{key: key}, nil
	case PublicKeyTypeEd25519ExtendedCardano:
		key, err := cardano.PublicKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
		return cardanoKey{key: key}, nil
	case PublicKeyTypeStarkex:
		key, err := starkex.PublicKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
		return starkexKey{key: key}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported public key type %d", keypair.ErrInvalidPublicKey, uint32(ty))
	}
}

// Type returns the key type.
func (p *PublicKey) Type() PublicKeyType { return p.ty }

// Bytes returns the encoding of the key in its type's format.
func (p *PublicKey) Bytes() []byte { return p.v.bytes() }

// Verify reports whether sig is a valid signature of message. Malformed
// signatures and messages of the wrong size do not verify.
func (p *PublicKey) Verify(sig, message []byte) bool {
	ok := p.v.verify(sig, message)
	logging.NewLogger("tw", "Verify").
		WithFields(logrus.Fields{"type": p.ty.String(), "valid": ok, "signature_size": len(sig)}).
		Debug("Verified signature")
	return ok
}

type secp256k1Key struct {
	key      *secp256k1.PublicKey
	extended bool
}

func (k secp256k1Key) verify(sig, message []byte) bool { return k.key.VerifyBytes(sig, message) }

func (k secp256k1Key) bytes() []byte {
	if k.extended {
		b := k.key.Uncompressed()
		return b[:]
	}
	b := k.key.Compressed()
	return b[:]
}

type ed25519Key struct{ key *sha512.PublicKey }

func (k ed25519Key) verify(sig, message []byte) bool {
	s, err := ed25519.SignatureFromBytes(sig)
	return err == nil && k.key.Verify(s, message)
}

func (k ed25519Key) bytes() []byte { return k.key.Bytes() }

type blake2bKey struct{ key *blake2b.PublicKey }

func (k blake2bKey) verify(sig, message []byte) bool {
	s, err := ed25519.SignatureFromBytes(sig)
	return err == nil && k.key.Verify(s, message)
}

func (k blake2bKey) bytes() []byte { return k.key.Bytes() }

type cardanoKey struct{ key *cardano.PublicKey }

func (k cardanoKey) verify(sig, message []byte) bool {
	s, err := ed25519.SignatureFromBytes(sig)
	return err == nil && k.key.Verify(s, message)
}

func (k cardanoKey) bytes() []byte { return k.key.Bytes() }

type starkexKey struct{ key *starkex.PublicKey }

func (k starkexKey) verify(sig, message []byte) bool { return k.key.VerifyBytes(sig, message) }

func (k starkexKey) bytes() []byte { return k.key.Bytes() }
