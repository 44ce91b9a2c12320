package tw

import (
	"fmt"

	"github.com/sirupsen/logrus"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519/blake2b"
	"github.com/opd-ai/twkeypair/ed25519/cardano"
	"github.com/opd-ai/twkeypair/ed25519/sha512"
	"github.com/opd-ai/twkeypair/logging"
	"github.com/opd-ai/twkeypair/secp256k1"
	"github.com/opd-ai/twkeypair/starkex"
	"github.com/opd-ai/twkeypair/zeroize"
)

// PrivateKey is raw secret material that is interpreted per curve on use.
type PrivateKey struct {
	secret *zeroize.Bytes
}

// PrivateKeyFromBytes copies a 32-byte secret or a 96/192-byte Cardano
// extended key.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	switch len(b) {
	case 32, cardano.PrivateKeySize, cardano.DoublePrivateKeySize:
		return &PrivateKey{secret: zeroize.New(b)}, nil
	default:
		err := fmt.Errorf("%w: unsupported secret length %d", keypair.ErrInvalidSecretKey, len(b))
		logging.NewLogger("tw", "PrivateKeyFromBytes").
			WithFields(logging.SecretFields("secret", b)).
			WithError(err, "construct").
			Warn("Rejected private key")
		return nil, err
	}
}

// IsValid reports whether b is a valid secret for curve.
func IsValid(b []byte, curve Curve) bool {
	switch curve {
	case CurveSecp256k1:
		return wipeIfValid(secp256k1.PrivateKeyFromBytes(b))
	case CurveEd25519:
		return wipeIfValid(sha512.PrivateKeyFromBytes(b))
	case CurveEd25519Blake2bNano:
		return wipeIfValid(blake2b.PrivateKeyFromBytes(b))
	case CurveEd25519ExtendedCardano:
		return wipeIfValid(cardano.PrivateKeyFromBytes(b))
	case CurveStarkex:
		return wipeIfValid(starkex.PrivateKeyFromBytes(b))
	default:
		return false
	}
}

func wipeIfValid(k interface{ Wipe() }, err error) bool {
	if err != nil {
		return false
	}
	k.Wipe()
	return true
}

// Bytes returns a copy of the secret. The caller should wipe it.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, k.secret.Len())
	copy(out, k.secret.Expose())
	return out
}

// Sign signs message with the algorithm of curve. secp256k1 and starkex
// expect a 32-byte digest and return 65- and 64-byte signatures; the ed25519
// family signs message as is and returns 64 bytes.
func (k *PrivateKey) Sign(message []byte, curve Curve) ([]byte, error) {
	var sig []byte
	err := zeroize.With(k.secret.Expose(), func(secret []byte) (err error) {
		sig, err = sign(secret, message, curve)
		return err
	})
	if err != nil {
		logging.NewLogger("tw", "Sign").
			WithError(err, "sign").
			WithFields(logrus.Fields{"curve": curve.String(), "message_size": len(message)}).
			Warn("Signing failed")
		return nil, err
	}
	return sig, nil
}

func sign(secret, message []byte, curve Curve) ([]byte, error) {
	switch curve {
	case CurveSecp256k1:
		priv, err := secp256k1.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		sig, err := priv.SignBytes(message)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	case CurveEd25519:
		priv, err := sha512.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		sig, err := priv.Sign(message)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	case CurveEd25519Blake2bNano:
		priv, err := blake2b.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		sig, err := priv.Sign(message)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	case CurveEd25519ExtendedCardano:
		priv, err := cardano.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		sig, err := priv.Sign(message)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	case CurveStarkex:
		priv, err := starkex.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		sig, err := priv.SignBytes(message)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported curve %d", keypair.ErrInvalidSecretKey, uint32(curve))
	}
}

// PublicKey derives the public key of the given type.
func (k *PrivateKey) PublicKey(ty PublicKeyType) (*PublicKey, error) {
	var v variant
	err := zeroize.With(k.secret.Expose(), func(secret []byte) (err error) {
		v, err = public(secret, ty)
		return err
	})
	if err != nil {
		logging.NewLogger("tw", "PublicKey").
			WithError(err, "derive").
			WithField("type", ty.String()).
			Warn("Public key derivation failed")
		return nil, err
	}
	return &PublicKey{ty: ty, v: v}, nil
}

func public(secret []byte, ty PublicKeyType) (variant, error) {
	switch ty {
	case PublicKeyTypeSecp256k1, PublicKeyTypeSecp256k1Extended:
		priv, err := secp256k1.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		return secp256k1Key{key: priv.Public(), extended: ty == PublicKeyTypeSecp256k1Extended}, nil
	case PublicKeyTypeEd25519:
		priv, err := sha512.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		return ed25519Key{key: priv.Public()}, nil
	case PublicKeyTypeEd25519Blake2b:
		priv, err := blake2b.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		return blake2bKey{key: priv.Public()}, nil
	case PublicKeyTypeEd25519ExtendedCardano:
		priv, err := cardano.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		return cardanoKey{key: priv.Public()}, nil
	case PublicKeyTypeStarkex:
		priv, err := starkex.PrivateKeyFromBytes(secret)
		if err != nil {
			return nil, err
		}
		defer priv.Wipe()
		return starkexKey{key: priv.Public()}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported public key type %d", keypair.ErrInvalidPublicKey, uint32(ty))
	}
}

// Wipe zeroes the secret.
func (k *PrivateKey) Wipe() {
	if k == nil {
		return
	}
	k.secret.Wipe()
}
