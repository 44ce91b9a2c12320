package cardano

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
	"github.com/opd-ai/twkeypair/logging"
	"github.com/opd-ai/twkeypair/zeroize"
)

// HardenedOffset is the first hardened child index.
const HardenedOffset uint32 = 1 << 31

// Domain tags of the V2 scheme.
const (
	tagPrivateZ byte = 0x00
	tagPrivateI byte = 0x01
	tagPublicZ  byte = 0x02
	tagPublicI  byte = 0x03
)

// IsHardened reports whether index selects a hardened child.
func IsHardened(index uint32) bool { return index >= HardenedOffset }

func (k *extendedPrivate) derive(index uint32) (*extendedPrivate, error) {
	if err := k.live(); err != nil {
		return nil, err
	}
	secret := k.secret.Expose()
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], index)

	var z, i []byte
	if IsHardened(index) {
		z = hmacSHA512(k.chainCode[:], []byte{tagPrivateZ}, secret, idx[:])
		i = hmacSHA512(k.chainCode[:], []byte{tagPrivateI}, secret, idx[:])
	} else {
		z = hmacSHA512(k.chainCode[:], []byte{tagPublicZ}, k.public[:], idx[:])
		i = hmacSHA512(k.chainCode[:], []byte{tagPublicI}, k.public[:], idx[:])
	}
	defer zeroize.ZeroBytes(z)
	defer zeroize.ZeroBytes(i)

	child := make([]byte, PrivateKeySize)
	defer zeroize.ZeroBytes(child)
	addMul8(child[:32], secret[:32], z[:28])
	add256(child[32:64], secret[32:64], z[32:])
	copy(child[64:], i[32:])

	logging.NewLogger("cardano", "Derive").
		WithField("hardened", IsHardened(index)).
		Debug("Derived child private key")
	return newExtendedPrivate(child)
}

func (p *extendedPublic) derive(index uint32) (*extendedPublic, error) {
	if IsHardened(index) {
		return nil, fmt.Errorf("%w: hardened index %d needs the private key", keypair.ErrInvalidPublicKey, index)
	}
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], index)
	z := hmacSHA512(p.chainCode[:], []byte{tagPublicZ}, p.point[:], idx[:])
	i := hmacSHA512(p.chainCode[:], []byte{tagPublicI}, p.point[:], idx[:])

	var wide [64]byte
	addMul8(wide[:32], make([]byte, 32), z[:28])
	tweak, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	A, err := new(edwards25519.Point).SetBytes(p.point[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	childPoint := new(edwards25519.Point).Add(A, new(edwards25519.Point).ScalarBaseMult(tweak))

	child := &extendedPublic{point: [ed25519.PublicKeySize]byte(childPoint.Bytes())}
	copy(child.chainCode[:], i[32:])
	return child, nil
}

func hmacSHA512(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(sha512.New, key)
	for _, p := range parts {
		mac.Write(p)
	}
	return mac.Sum(nil)
}

// addMul8 sets out = x + 8·y over little-endian integers, truncated to
// len(out) bytes. y may be shorter than x.
func addMul8(out, x, y []byte) {
	var carry uint16
	for i := range out {
		r := uint16(x[i]) + carry
		if i < len(y) {
			r += uint16(y[i]) << 3
		}
		out[i] = byte(r)
		carry = r >> 8
	}
}

// add256 sets out = x + y mod 2^256 over little-endian integers.
func add256(out, x, y []byte) {
	var carry uint16
	for i := range out {
		r := uint16(x[i]) + uint16(y[i]) + carry
		out[i] = byte(r)
		carry = r >> 8
	}
}
