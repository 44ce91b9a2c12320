package sha512

import (
	stded25519 "crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keypair "github.com/opd-ai/twkeypair"
	"github.com/opd-ai/twkeypair/ed25519"
)

func TestKeyDerivation(t *testing.T) {
	priv, err := PrivateKeyFromHex("c38ffac92f0ea1bca19a07e3e5fc481188968d7fe1a38596ff511541fb037ad4")
	require.NoError(t, err)
	assert.Equal(t, "ccc27a326ab783e2cf1887464742bb351c8e043758c95f412d31ba221f745e25",
		hex.EncodeToString(priv.Public().Bytes()))
	assert.Equal(t, "c38ffac92f0ea1bca19a07e3e5fc481188968d7fe1a38596ff511541fb037ad4",
		hex.EncodeToString(priv.Bytes()))
}

func TestVerifyKnownSignature(t *testing.T) {
	pub, err := PublicKeyFromHex("4870d56d074c50e891506d78faa4fb69ca039cc5f131eb491e166b975880e867")
	require.NoError(t, err)
	sigBytes, err := hex.DecodeString("42848abf2641a731e18b8a1fb80eff341a5acebdc56faeccdcbadb960aef7751" +
		"92842fccec344679446daa4d02d264259c8f9aa364164ebe0ebea218581e2e03")
	require.NoError(t, err)
	sig, err := ed25519.SignatureFromBytes(sigBytes)
	require.NoError(t, err)

	msg := sha256.Sum256([]byte("Hello"))
	assert.True(t, pub.Verify(sig, msg[:]))
	assert.True(t, stded25519.Verify(pub.Bytes(), msg[:], sigBytes))

	other := sha256.Sum256([]byte("Hello!"))
	assert.False(t, pub.Verify(sig, other[:]))
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := KeyPairFromBytes(make([]byte, ed25519.SeedSize))
	require.NoError(t, err)
	for _, msg := range [][]byte{nil, []byte("a"), make([]byte, 4096)} {
		sig, err := kp.Sign(msg)
		require.NoError(t, err)
		assert.True(t, kp.Verify(sig, msg))

		tampered := sig
		tampered[10] ^= 1
		assert.False(t, kp.Verify(tampered, msg))
	}
	assert.Equal(t, kp.Private().Public().Bytes(), kp.Public().Bytes())
}

func TestRejects(t *testing.T) {
	_, err := PrivateKeyFromBytes(make([]byte, 31))
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
	_, err = PrivateKeyFromHex("xyz")
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
	_, err = PublicKeyFromBytes(make([]byte, 33))
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
	_, err = PublicKeyFromHex("xyz")
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
	_, err = KeyPairFromBytes(nil)
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
}

func TestWipe(t *testing.T) {
	priv, err := PrivateKeyFromBytes(make([]byte, ed25519.SeedSize))
	require.NoError(t, err)
	priv.Wipe()
	_, err = priv.Sign([]byte("x"))
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
}
