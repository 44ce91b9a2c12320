package starkex

import (
	"fmt"
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/logging"
	"github.com/opd-ai/twkeypair/zeroize"
)

var (
	_ keypair.SigningKey[[FeltSize]byte, Signature]   = (*PrivateKey)(nil)
	_ keypair.VerifyingKey[[FeltSize]byte, Signature] = (*PublicKey)(nil)
	_ keypair.KeyPair[*PrivateKey, *PublicKey]        = (*KeyPair)(nil)
)

// PrivateKey is a STARK curve scalar in [1, n).
type PrivateKey struct {
	secret *zeroize.Bytes
	public *PublicKey
}

// PrivateKeyFromBytes validates a 32-byte big-endian scalar.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != FeltSize {
		return nil, fmt.Errorf("%w: starkex secret must be %d bytes, got %d",
			keypair.ErrInvalidSecretKey, FeltSize, len(b))
	}
	d := new(big.Int).SetBytes(b)
	defer d.SetInt64(0)
	if d.Sign() == 0 || d.Cmp(curveOrder) >= 0 {
		return nil, fmt.Errorf("%w: starkex scalar out of range", keypair.ErrInvalidSecretKey)
	}

	var q starkcurve.G1Jac
	q.ScalarMultiplication(&generator, d)
	var qa starkcurve.G1Affine
	qa.FromJacobian(&q)

	return &PrivateKey{
		secret: zeroize.New(b),
		public: &PublicKey{point: qa},
	}, nil
}

// PrivateKeyFromHex parses a hex scalar of up to 32 bytes, with or without
// 0x and leading zeros.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := decodeFelt(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidSecretKey, err)
	}
	defer zeroize.ZeroBytes(b)
	return PrivateKeyFromBytes(b)
}

// Public returns the public key.
func (k *PrivateKey) Public() *PublicKey { return k.public }

// Bytes returns a copy of the scalar. The caller should wipe it.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, FeltSize)
	copy(out, k.secret.Expose())
	return out
}

// Sign signs a message element below 2^251. Inputs for which r or w fall
// outside [1, 2^251) fail with keypair.ErrSigningError; the nonce is
// deterministic, so retrying does not help.
func (k *PrivateKey) Sign(message [FeltSize]byte) (Signature, error) {
	if k.secret.Len() != FeltSize {
		return Signature{}, fmt.Errorf("%w: starkex key has been wiped", keypair.ErrInvalidSecretKey)
	}
	m := new(big.Int).SetBytes(message[:])
	if m.Cmp(elementBound) >= 0 {
		return Signature{}, fmt.Errorf("%w: starkex message must be below 2^%d", keypair.ErrInvalidSignMessage, ElementBits)
	}

	log := logging.NewLogger("starkex", "Sign")
	d := new(big.Int).SetBytes(k.secret.Expose())
	defer d.SetInt64(0)
	nonce := generateK(d, m)
	defer nonce.SetInt64(0)

	var R starkcurve.G1Jac
	R.ScalarMultiplication(&generator, nonce)
	var Ra starkcurve.G1Affine
	Ra.FromJacobian(&R)
	r := Ra.X.BigInt(new(big.Int))
	if !inElementRange(r) {
		err := fmt.Errorf("%w: r out of range", keypair.ErrSigningError)
		log.WithError(err, "sign").Warn("Signing failed")
		return Signature{}, err
	}

	var rf, df, mf, kf, t, w fr.Element
	rf.SetBigInt(r)
	df.SetBigInt(d)
	mf.SetBigInt(m)
	kf.SetBigInt(nonce)
	defer df.SetZero()
	defer kf.SetZero()

	// w = k / (m + r·d)
	t.Mul(&rf, &df).Add(&t, &mf)
	if t.IsZero() {
		err := fmt.Errorf("%w: m + r·d is zero", keypair.ErrSigningError)
		log.WithError(err, "sign").Warn("Signing failed")
		return Signature{}, err
	}
	w.Inverse(&t).Mul(&w, &kf)
	if !inElementRange(w.BigInt(new(big.Int))) {
		err := fmt.Errorf("%w: w out of range", keypair.ErrSigningError)
		log.WithError(err, "sign").Warn("Signing failed")
		return Signature{}, err
	}

	var s fr.Element
	s.Inverse(&w)

	var sig Signature
	sig.r = Ra.X.Bytes()
	sig.s = s.Bytes()
	return sig, nil
}

// SignBytes is Sign for callers holding a slice. message must be 32 bytes.
func (k *PrivateKey) SignBytes(message []byte) (Signature, error) {
	if len(message) != FeltSize {
		return Signature{}, fmt.Errorf("%w: starkex message must be %d bytes, got %d",
			keypair.ErrInvalidSignMessage, FeltSize, len(message))
	}
	return k.Sign([FeltSize]byte(message))
}

// Wipe zeroes the scalar.
func (k *PrivateKey) Wipe() {
	if k == nil {
		return
	}
	k.secret.Wipe()
}

// KeyPair bundles a private key with its public key.
type KeyPair struct {
	private *PrivateKey
}

// KeyPairFromBytes builds a key pair from a 32-byte scalar.
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
func (kp *KeyPair) Sign(message [FeltSize]byte) (Signature, error) { return kp.private.Sign(message) }

// Verify checks sig against the public key.
func (kp *KeyPair) Verify(sig Signature, message [FeltSize]byte) bool {
	return kp.Public().Verify(sig, message)
}
