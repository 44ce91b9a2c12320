package starkex

import (
	"fmt"
	"math/big"
	"strings"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/zeroize"
)

// ElementBits bounds messages, r and w.
const ElementBits = 251

// FeltSize is the encoded length of keys, messages and signature halves.
const FeltSize = 32

const betaHex = "6f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89"

var (
	curveOrder   = fr.Modulus()
	elementBound = new(big.Int).Lsh(big.NewInt(1), ElementBits)

	beta      fp.Element
	generator starkcurve.G1Jac
)

func init() {
	b, ok := new(big.Int).SetString(betaHex, 16)
	if !ok {
		panic("starkex: bad curve constant")
	}
	beta.SetBigInt(b)
	generator, _ = starkcurve.Generators()
}

// inElementRange reports whether 1 <= v < 2^251.
func inElementRange(v *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(elementBound) < 0
}

// liftX returns the curve point with x-coordinate x and the even of the two
// possible y values.
func liftX(x *big.Int) (starkcurve.G1Affine, error) {
	var p starkcurve.G1Affine
	if x.Cmp(fp.Modulus()) >= 0 {
		return p, fmt.Errorf("%w: x-coordinate is not a field element", keypair.ErrInvalidPublicKey)
	}
	p.X.SetBigInt(x)

	// y² = x³ + x + β
	var rhs fp.Element
	rhs.Square(&p.X).Mul(&rhs, &p.X).Add(&rhs, &p.X).Add(&rhs, &beta)
	if p.Y.Sqrt(&rhs) == nil {
		return p, fmt.Errorf("%w: x-coordinate is not on the curve", keypair.ErrInvalidPublicKey)
	}
	if p.Y.BigInt(new(big.Int)).Bit(0) == 1 {
		p.Y.Neg(&p.Y)
	}
	return p, nil
}

// decodeFelt parses a hex field element of up to 32 bytes, left-padding
// short or odd-length input as StarkEx tooling prints it.
func decodeFelt(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := keypair.DecodeHex(s)
	if err != nil {
		return nil, err
	}
	defer zeroize.ZeroBytes(b)
	if len(b) > FeltSize {
		return nil, fmt.Errorf("%d bytes exceed a field element", len(b))
	}
	out := make([]byte, FeltSize)
	copy(out[FeltSize-len(b):], b)
	return out, nil
}
