package starkex

import (
	"fmt"
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"

	keypair "github.com/opd-ai/twkeypair"
)

// PublicKey is a STARK curve point, encoded as its x-coordinate.
type PublicKey struct {
	point starkcurve.G1Affine
}

// PublicKeyFromBytes parses a 32-byte big-endian x-coordinate.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != FeltSize {
		return nil, fmt.Errorf("%w: starkex key must be %d bytes, got %d",
			keypair.ErrInvalidPublicKey, FeltSize, len(b))
	}
	p, err := liftX(new(big.Int).SetBytes(b))
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: p}, nil
}

// PublicKeyFromHex parses a hex x-coordinate of up to 32 bytes.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	b, err := decodeFelt(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return PublicKeyFromBytes(b)
}

// Bytes returns the 32-byte x-coordinate.
func (p *PublicKey) Bytes() []byte {
	x := p.point.X.Bytes()
	return x[:]
}

// Verify checks sig over message. Only x is known, so both points sharing
// it are tried.
func (p *PublicKey) Verify(sig Signature, message [FeltSize]byte) bool {
	r := new(big.Int).SetBytes(sig.r[:])
	s := new(big.Int).SetBytes(sig.s[:])
	m := new(big.Int).SetBytes(message[:])
	if !inElementRange(r) || s.Sign() == 0 || s.Cmp(curveOrder) >= 0 || m.Cmp(elementBound) >= 0 {
		return false
	}

	var sf, w, u1, u2, rf, mf fr.Element
	sf.SetBigInt(s)
	w.Inverse(&sf)
	if !inElementRange(w.BigInt(new(big.Int))) {
		return false
	}
	rf.SetBigInt(r)
	mf.SetBigInt(m)
	u1.Mul(&mf, &w)
	u2.Mul(&rf, &w)
	u1Int, u2Int := u1.BigInt(new(big.Int)), u2.BigInt(new(big.Int))

	var uG starkcurve.G1Jac
	uG.ScalarMultiplication(&generator, u1Int)

	for _, q := range p.candidates() {
		var qj, acc starkcurve.G1Jac
		qj.FromAffine(&q)
		acc.ScalarMultiplication(&qj, u2Int)
		acc.AddAssign(&uG)

		var ra starkcurve.G1Affine
		ra.FromJacobian(&acc)
		if ra.IsInfinity() {
			continue
		}
		if ra.X.BigInt(new(big.Int)).Cmp(r) == 0 {
			return true
		}
	}
	return false
}

// VerifyBytes is Verify over raw slices. Malformed input does not verify.
func (p *PublicKey) VerifyBytes(sig, message []byte) bool {
	if len(message) != FeltSize {
		return false
	}
	parsed, err := SignatureFromBytes(sig)
	if err != nil {
		return false
	}
	return p.Verify(parsed, [FeltSize]byte(message))
}

func (p *PublicKey) candidates() [2]starkcurve.G1Affine {
	var neg starkcurve.G1Affine
	neg.Neg(&p.point)
	return [2]starkcurve.G1Affine{p.point, neg}
}
