package waves

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
	"github.com/opd-ai/twkeypair/ed25519/sha512"
)

const (
	fixtureSeed      = "9864a747e1b97f131fabb6b447296c9b6f0201e79fb3c5356e6c77e89b6a806a"
	fixturePublic    = "559a50cb45a9a8e8d4f83295c354725990164d10bb505275d1a3086c08fb935d"
	fixtureEdPublic  = "ff84c4bfc095df25b01e48807715856d95af93d88c5b57f30cb0ce567ca4ced6"
	fixtureMessage   = "7761766573207472616e73666572207061796c6f6164"
	fixtureSignature = "f5abad5594ba71b88284b966d4817f8ee9fca6af170262d5158e1efd68b1e496" +
		"026a09ebd11b277ec13c00030c79f6095d91864626fd428e3c983993eece1087"

	peerSeed   = "bbfcd53410f8c0a79e11812c238971274e716a497eaa3003bfc268c6ee82dc58"
	peerPublic = "f3bba7265c2b8e0d1217c2786be087260dd7551b1f7173d081f11ae9e2394037"
	sharedKey  = "36c338f19f4d36a684250b433004c50999d89ec7381e36bcf9bbc9a21ee69f47"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPrivToPub(t *testing.T) {
	kp, err := KeyPairFromBytes(mustHex(t, fixtureSeed))
	require.NoError(t, err)
	assert.Equal(t, fixturePublic, hex.EncodeToString(kp.Public().Bytes()))
	assert.Equal(t, fixtureSeed, hex.EncodeToString(kp.Private().Bytes()))

	std, err := sha512.PrivateKeyFromHex(fixtureSeed)
	require.NoError(t, err)
	assert.Equal(t, fixtureEdPublic, hex.EncodeToString(std.Public().Bytes()))
}

func TestSignFixture(t *testing.T) {
	kp, err := KeyPairFromBytes(mustHex(t, fixtureSeed))
	require.NoError(t, err)
	msg := mustHex(t, fixtureMessage)

	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, fixtureSignature, hex.EncodeToString(sig.Bytes()))
	assert.True(t, kp.Verify(sig, msg))

	// The Edwards key is "negative", so the sign bit is set.
	assert.Equal(t, byte(0x80), sig[63]&0x80)
}

func TestSignatureIsStandardApartFromSignBit(t *testing.T) {
	seed := mustHex(t, fixtureSeed)
	w, err := PrivateKeyFromBytes(seed)
	require.NoError(t, err)
	std, err := sha512.PrivateKeyFromBytes(seed)
	require.NoError(t, err)

	msg := []byte("compare")
	wSig, err := w.Sign(msg)
	require.NoError(t, err)
	stdSig, err := std.Sign(msg)
	require.NoError(t, err)

	assert.Equal(t, stdSig[:63], wSig[:63])
	wSig[63] &= 0x7f
	assert.Equal(t, stdSig, wSig)
}

func TestVerifyFromPublicBytes(t *testing.T) {
	pub, err := PublicKeyFromHex(fixturePublic)
	require.NoError(t, err)
	sig, err := ed25519.SignatureFromBytes(mustHex(t, fixtureSignature))
	require.NoError(t, err)
	msg := mustHex(t, fixtureMessage)

	assert.True(t, pub.Verify(sig, msg))

	flipped := sig
	flipped[63] ^= 0x80
	assert.False(t, pub.Verify(flipped, msg), "wrong sign bit must fail")

	tampered := sig
	tampered[5] ^= 0x01
	assert.False(t, pub.Verify(tampered, msg))
	assert.False(t, pub.Verify(sig, append(msg, 0)))
}

func TestRoundTripManySeeds(t *testing.T) {
	for i := byte(0); i < 16; i++ {
		seed := make([]byte, 32)
		seed[0], seed[31] = i, 0xa5^i
		kp, err := KeyPairFromBytes(seed)
		require.NoError(t, err)

		pub, err := PublicKeyFromBytes(kp.Public().Bytes())
		require.NoError(t, err)
		sig, err := kp.Sign([]byte{i})
		require.NoError(t, err)
		assert.True(t, pub.Verify(sig, []byte{i}), "seed %d", i)
	}
}

func TestSharedKey(t *testing.T) {
	alice, err := PrivateKeyFromHex(fixtureSeed)
	require.NoError(t, err)
	bob, err := PrivateKeyFromHex(peerSeed)
	require.NoError(t, err)
	assert.Equal(t, peerPublic, hex.EncodeToString(bob.Public().Bytes()))

	ab, err := alice.SharedKey(bob.Public())
	require.NoError(t, err)
	ba, err := bob.SharedKey(alice.Public())
	require.NoError(t, err)

	assert.Equal(t, sharedKey, hex.EncodeToString(ab[:]))
	assert.Equal(t, ab, ba)
}

func TestSharedKeyMatchesCurve25519BasePoint(t *testing.T) {
	priv, err := PrivateKeyFromHex(fixtureSeed)
	require.NoError(t, err)
	scalar, err := priv.key.ScalarBytes()
	require.NoError(t, err)

	pub, err := curve25519.X25519(scalar, curve25519.Basepoint)
	require.NoError(t, err)
	assert.Equal(t, priv.Public().Bytes(), pub)
}

func TestSharedKeyRejectsLowOrderPeer(t *testing.T) {
	priv, err := PrivateKeyFromHex(fixtureSeed)
	require.NoError(t, err)
	// u = 0 is a point of small order; X25519 yields all zeros.
	_, err = priv.SharedKey(&PublicKey{})
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
	_, err = priv.SharedKey(nil)
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
}

func TestRejects(t *testing.T) {
	_, err := PrivateKeyFromBytes(make([]byte, 31))
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
	_, err = PrivateKeyFromHex("zz")
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)

	_, err = PublicKeyFromBytes(make([]byte, 33))
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
	_, err = PublicKeyFromHex("zz")
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)

	minusOne := make([]byte, 32)
	minusOne[0] = 0xec
	for i := 1; i < 31; i++ {
		minusOne[i] = 0xff
	}
	minusOne[31] = 0x7f
	_, err = PublicKeyFromBytes(minusOne)
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
}

func TestWipe(t *testing.T) {
	priv, err := PrivateKeyFromHex(fixtureSeed)
	require.NoError(t, err)
	peer := priv.Public()
	priv.Wipe()

	_, err = priv.Sign([]byte("x"))
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
	_, err = priv.SharedKey(peer)
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
}
