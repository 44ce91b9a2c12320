package starkex

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"github.com/opd-ai/twkeypair/zeroize"
)

// generateK derives the deterministic nonce for (d, m) following RFC 6979
// with HMAC-SHA256 and the curve order as q. A message whose bit length is
// just over a byte boundary near 252 bits is shifted left by four bits first,
// so that bits2int truncation gives back the original value.
func generateK(d, m *big.Int) *big.Int {
	qlen := curveOrder.BitLen()
	rolen := (qlen + 7) / 8

	padded := new(big.Int).Set(m)
	if bl := padded.BitLen(); bl >= 248 && bl%8 >= 1 && bl%8 <= 4 {
		padded.Lsh(padded, 4)
	}

	bx := make([]byte, 0, 2*rolen)
	bx = append(bx, d.FillBytes(make([]byte, rolen))...)
	bx = append(bx, bits2octets(padded.Bytes(), qlen, rolen)...)
	defer zeroize.ZeroBytes(bx)

	v := make([]byte, sha256.Size)
	k := make([]byte, sha256.Size)
	for i := range v {
		v[i] = 0x01
	}

	k = mac(k, v, []byte{0x00}, bx)
	v = mac(k, v)
	k = mac(k, v, []byte{0x01}, bx)
	v = mac(k, v)
	defer zeroize.ZeroBytes(k)

	for {
		var t []byte
		for len(t) < rolen {
			v = mac(k, v)
			t = append(t, v...)
		}
		candidate := bits2int(t, qlen)
		zeroize.ZeroBytes(t)
		if candidate.Sign() > 0 && candidate.Cmp(curveOrder) < 0 {
			return candidate
		}
		k = mac(k, v, []byte{0x00})
		v = mac(k, v)
	}
}

func mac(key []byte, parts ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func bits2int(b []byte, qlen int) *big.Int {
	x := new(big.Int).SetBytes(b)
	if l := len(b) * 8; l > qlen {
		x.Rsh(x, uint(l-qlen))
	}
	return x
}

func bits2octets(b []byte, qlen, rolen int) []byte {
	z := bits2int(b, qlen)
	if z.Cmp(curveOrder) >= 0 {
		z.Sub(z, curveOrder)
	}
	return z.FillBytes(make([]byte, rolen))
}
