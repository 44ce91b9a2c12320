package cardano

import (
	"bytes"
	"fmt"

	"filippo.io/edwards25519"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
	"github.com/opd-ai/twkeypair/zeroize"
)

const (
	// ExtendedSecretSize is kL ‖ kR.
	ExtendedSecretSize = 64

	// ChainCodeSize is the length of a BIP32 chain code.
	ChainCodeSize = 32

	// PrivateKeySize is kL ‖ kR ‖ chain code.
	PrivateKeySize = ExtendedSecretSize + ChainCodeSize

	// PublicKeySize is A ‖ chain code.
	PublicKeySize = ed25519.PublicKeySize + ChainCodeSize

	// DoublePrivateKeySize is spending ‖ staking private keys.
	DoublePrivateKeySize = 2 * PrivateKeySize

	// DoublePublicKeySize is spending ‖ staking public keys.
	DoublePublicKeySize = 2 * PublicKeySize
)

type extendedPrivate struct {
	secret    *zeroize.Bytes
	chainCode [ChainCodeSize]byte
	public    [ed25519.PublicKeySize]byte
}

func newExtendedPrivate(b []byte) (*extendedPrivate, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: cardano extended key must be %d bytes, got %d",
			keypair.ErrInvalidSecretKey, PrivateKeySize, len(b))
	}
	kL, kR := b[:32], b[32:64]
	if kL[0]&0x07 != 0 || kL[31]&0x80 != 0 {
		return nil, fmt.Errorf("%w: cardano scalar is not clamped", keypair.ErrInvalidSecretKey)
	}

	e, err := ed25519.NewExpandedSecret(kL, kR)
	if err != nil {
		return nil, err
	}
	defer e.Wipe()

	k := &extendedPrivate{
		secret: zeroize.New(b[:ExtendedSecretSize]),
		public: e.PublicKey(),
	}
	copy(k.chainCode[:], b[ExtendedSecretSize:])
	return k, nil
}

func (k *extendedPrivate) live() error {
	if k.secret.Len() != ExtendedSecretSize {
		return fmt.Errorf("%w: cardano key has been wiped", keypair.ErrInvalidSecretKey)
	}
	return nil
}

func (k *extendedPrivate) publicKey() *extendedPublic {
	return &extendedPublic{point: k.public, chainCode: k.chainCode}
}

func (k *extendedPrivate) sign(message []byte) (ed25519.Signature, error) {
	if err := k.live(); err != nil {
		return ed25519.Signature{}, err
	}
	secret := k.secret.Expose()
	e, err := ed25519.NewExpandedSecret(secret[:32], secret[32:])
	if err != nil {
		return ed25519.Signature{}, err
	}
	defer e.Wipe()
	return e.Sign(ed25519.SHA512, k.public, message), nil
}

// appendTo appends kL ‖ kR ‖ chain code.
func (k *extendedPrivate) appendTo(out []byte) []byte {
	out = append(out, k.secret.Expose()...)
	return append(out, k.chainCode[:]...)
}

func (k *extendedPrivate) wipe() {
	if k == nil {
		return
	}
	k.secret.Wipe()
	zeroize.ZeroBytes(k.chainCode[:])
}

type extendedPublic struct {
	point     [ed25519.PublicKeySize]byte
	chainCode [ChainCodeSize]byte
}

func newExtendedPublic(b []byte) (*extendedPublic, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: cardano extended public key must be %d bytes, got %d",
			keypair.ErrInvalidPublicKey, PublicKeySize, len(b))
	}
	if _, err := new(edwards25519.Point).SetBytes(b[:32]); err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrInvalidPublicKey, err)
	}
	return &extendedPublic{
		point:     [ed25519.PublicKeySize]byte(b[:32]),
		chainCode: [ChainCodeSize]byte(b[32:]),
	}, nil
}

func (p *extendedPublic) verify(sig ed25519.Signature, message []byte) bool {
	return ed25519.Verify(ed25519.SHA512, p.point, message, sig)
}

func (p *extendedPublic) appendTo(out []byte) []byte {
	out = append(out, p.point[:]...)
	return append(out, p.chainCode[:]...)
}

func (p *extendedPublic) equal(other *extendedPublic) bool {
	return bytes.Equal(p.point[:], other.point[:]) && bytes.Equal(p.chainCode[:], other.chainCode[:])
}
