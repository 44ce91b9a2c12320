package secp256k1

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/logging"
	"github.com/opd-ai/twkeypair/zeroize"
)

const (
	// PrivateKeySize is the length of a serialized private scalar.
	PrivateKeySize = 32

	// DigestSize is the length of the message digest consumed by Sign.
	DigestSize = 32

	// compactHeaderBase is the first header byte btcec emits for a compact
	// signature over a compressed public key (27 + 4).
	compactHeaderBase = 31
)

var (
	_ keypair.SigningKey[[DigestSize]byte, Signature] = (*PrivateKey)(nil)
)

// PrivateKey is a secp256k1 scalar in [1, n).
type PrivateKey struct {
	secret *zeroize.Bytes
	public *PublicKey
}

// PrivateKeyFromBytes validates b as a big-endian scalar in [1, n). b is
// copied; the caller keeps ownership of it.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: secp256k1 secret must be %d bytes, got %d",
			keypair.ErrInvalidSecretKey, PrivateKeySize, len(b))
	}

	var scalar btcec.ModNScalar
	overflow := scalar.SetByteSlice(b)
	defer scalar.Zero()
	if overflow {
		return nil, fmt.Errorf("%w: secp256k1 scalar is not below the curve order", keypair.ErrInvalidSecretKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: secp256k1 scalar is zero", keypair.ErrInvalidSecretKey)
	}

	priv := &PrivateKey{secret: zeroize.New(b)}
	err := priv.withKey(func(k *btcec.PrivateKey) error {
		priv.public = &PublicKey{key: k.PubKey()}
		return nil
	})
	if err != nil {
		priv.Wipe()
		return nil, err
	}

	logging.NewLogger("secp256k1", "PrivateKeyFromBytes").
		WithFields(logging.PublicPreview("pubkey", priv.public.Bytes())).
		Debug("Private key loaded")
	return priv, nil
}

// PrivateKeyFromHex decodes s (optionally 0x-prefixed) and calls
// PrivateKeyFromBytes.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := keypair.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidSecretKey, err)
	}
	defer zeroize.ZeroBytes(b)
	return PrivateKeyFromBytes(b)
}

// withKey materializes the btcec key for the duration of fn and zeroes its
// scalar afterwards.
func (k *PrivateKey) withKey(fn func(*btcec.PrivateKey) error) error {
	if k == nil || k.secret.Len() != PrivateKeySize {
		return fmt.Errorf("%w: secp256k1 key has been wiped", keypair.ErrInvalidSecretKey)
	}
	priv, _ := btcec.PrivKeyFromBytes(k.secret.Expose())
	defer priv.Zero()
	return fn(priv)
}

// Public returns the public key d·G.
func (k *PrivateKey) Public() *PublicKey {
	return k.public
}

// Bytes returns a copy of the secret scalar. The caller should wipe it.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, PrivateKeySize)
	copy(out, k.secret.Expose())
	return out
}

// Sign produces a deterministic low-S recoverable signature over digest.
func (k *PrivateKey) Sign(digest [DigestSize]byte) (Signature, error) {
	var sig Signature
	err := k.withKey(func(priv *btcec.PrivateKey) error {
		compact := ecdsa.SignCompact(priv, digest[:], true)
		recid := compact[0] - compactHeaderBase
		if recid > 1 {
			return fmt.Errorf("%w: unexpected recovery id %d", keypair.ErrSigningError, recid)
		}
		copy(sig.r[:], compact[1:33])
		copy(sig.s[:], compact[33:65])
		sig.v = recid
		return nil
	})
	if err != nil {
		logging.NewLogger("secp256k1", "Sign").WithError(err, "sign").Warn("Signing failed")
		return Signature{}, err
	}
	return sig, nil
}

// SignBytes is Sign for callers holding a slice. digest must be 32 bytes.
func (k *PrivateKey) SignBytes(digest []byte) (Signature, error) {
	if len(digest) != DigestSize {
		return Signature{}, fmt.Errorf("%w: secp256k1 digest must be %d bytes, got %d",
			keypair.ErrInvalidSignMessage, DigestSize, len(digest))
	}
	return k.Sign([DigestSize]byte(digest))
}

// SharedKeyHash computes SHA-256 over the compressed encoding of the ECDH
// point d·P, the libsecp256k1 default hash.
func (k *PrivateKey) SharedKeyHash(peer *PublicKey) ([32]byte, error) {
	var out [32]byte
	if peer == nil || peer.key == nil {
		return out, fmt.Errorf("%w: nil peer key", keypair.ErrInvalidPublicKey)
	}
	err := k.withKey(func(priv *btcec.PrivateKey) error {
		var point, shared btcec.JacobianPoint
		peer.key.AsJacobian(&point)
		btcec.ScalarMultNonConst(&priv.Key, &point, &shared)
		shared.ToAffine()
		out = sha256.Sum256(btcec.NewPublicKey(&shared.X, &shared.Y).SerializeCompressed())
		return nil
	})
	if err != nil {
		return [32]byte{}, err
	}
	logging.NewLogger("secp256k1", "SharedKeyHash").
		WithFields(logging.PublicPreview("peer", peer.Bytes())).
		Debug("Computed ECDH shared key hash")
	return out, nil
}

// Wipe zeroes the secret scalar. The key is unusable afterwards.
func (k *PrivateKey) Wipe() {
	if k == nil {
		return
	}
	k.secret.Wipe()
}
