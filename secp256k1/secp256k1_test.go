package secp256k1

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keypair "github.com/opd-ai/twkeypair"
)

const (
	testSecretHex       = "afeefca74d9a325cf1d6b6911d61a65c32afa8e02bd5e78e2e4ac2910bab45f5"
	testCompressedHex   = "0399c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1"
	testUncompressedHex = "0499c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1" +
		"66b489a4b7c491e7688e6ebea3a71fc3a1a48d60f98d5ce84c93b65e423fde91"
	testSignatureHex = "8720a46b5b3963790d94bcc61ad57ca02fd153584315bfa161ed3455e336ba62" +
		"4d68df010ed934b8792c5b6a57ba86c3da31d039f9612b44d1bf054132254de901"
	testForeignSignatureHex = "375df53b6a4931dcf41e062b1c64288ed4ff3307f862d5c1b1c71964ce3b14c9" +
		"9422d0fdfeb2807e9900a26d491d5e8a874c24f98eec141ed694d7a433a90f0801"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func helloDigest() [DigestSize]byte {
	return [DigestSize]byte(crypto.Keccak256([]byte("hello")))
}

func TestPublicKeyDerivation(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	defer priv.Wipe()

	pub := priv.Public()
	compressed := pub.Compressed()
	uncompressed := pub.Uncompressed()
	assert.Equal(t, testCompressedHex, hex.EncodeToString(compressed[:]))
	assert.Equal(t, testUncompressedHex, hex.EncodeToString(uncompressed[:]))
	assert.Equal(t, compressed[:], pub.Bytes())

	again, err := PrivateKeyFromBytes(mustHex(t, testSecretHex))
	require.NoError(t, err)
	assert.True(t, again.Public().Equal(pub), "derivation must be deterministic")
}

func TestPrivateKeyFromBytesRejects(t *testing.T) {
	order := btcec.S256().Params().N.Bytes()
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"short", make([]byte, 31)},
		{"long", make([]byte, 33)},
		{"zero", make([]byte, 32)},
		{"order", order},
		{"all ones", mustHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PrivateKeyFromBytes(tt.in)
			assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
		})
	}

	_, err := PrivateKeyFromHex("not hex")
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
}

func TestPrivateKeyAcceptsPrefixedHex(t *testing.T) {
	priv, err := PrivateKeyFromHex("0x" + testSecretHex)
	require.NoError(t, err)
	assert.Equal(t, testSecretHex, hex.EncodeToString(priv.Bytes()))
}

func TestCompressedUncompressedRoundTrip(t *testing.T) {
	fromCompressed, err := PublicKeyFromHex(testCompressedHex)
	require.NoError(t, err)
	fromUncompressed, err := PublicKeyFromHex(testUncompressedHex)
	require.NoError(t, err)

	assert.True(t, fromCompressed.Equal(fromUncompressed))
	assert.Equal(t, fromCompressed.Uncompressed(), fromUncompressed.Uncompressed())
	assert.Equal(t, fromCompressed.Compressed(), fromUncompressed.Compressed())
}

func TestPublicKeyFromBytesRejects(t *testing.T) {
	compressed := mustHex(t, testCompressedHex)
	uncompressed := mustHex(t, testUncompressedHex)

	wrongPrefix := append([]byte{}, compressed...)
	wrongPrefix[0] = 0x04
	hybrid := append([]byte{}, uncompressed...)
	hybrid[0] = 0x06
	offCurve := append([]byte{}, uncompressed...)
	offCurve[64] ^= 0x01

	for name, in := range map[string][]byte{
		"empty":           nil,
		"x only":          compressed[1:],
		"wrong prefix":    wrongPrefix,
		"hybrid encoding": hybrid,
		"off curve":       offCurve,
		"too long":        append(uncompressed, 0),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := PublicKeyFromBytes(in)
			assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
		})
	}
}

func TestSignKnownVector(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)

	sig, err := priv.Sign(helloDigest())
	require.NoError(t, err)
	assert.Equal(t, testSignatureHex, hex.EncodeToString(sig.Bytes()))
	assert.Equal(t, byte(1), sig.V())

	assert.True(t, priv.Public().Verify(sig.ToVerifySignature(), helloDigest()))
}

func TestSignMatchesGoEthereum(t *testing.T) {
	ecdsaKey, err := crypto.HexToECDSA(testSecretHex)
	require.NoError(t, err)
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)

	for _, msg := range []string{"hello", "", "twkeypair", "another message"} {
		digest := crypto.Keccak256([]byte(msg))

		want, err := crypto.Sign(digest, ecdsaKey)
		require.NoError(t, err)
		got, err := priv.SignBytes(digest)
		require.NoError(t, err)
		assert.Equal(t, want, got.Bytes(), "message %q", msg)

		recovered, err := crypto.Ecrecover(digest, got.Bytes())
		require.NoError(t, err)
		uncompressed := priv.Public().Uncompressed()
		assert.Equal(t, uncompressed[:], recovered)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	pub, err := PublicKeyFromHex(testCompressedHex)
	require.NoError(t, err)
	assert.False(t, pub.VerifyBytes(mustHex(t, testForeignSignatureHex), crypto.Keccak256([]byte("hello"))))
}

func TestVerifyTamper(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	pub := priv.Public()
	digest := crypto.Keccak256([]byte("hello"))
	sig := mustHex(t, testSignatureHex)

	assert.True(t, pub.VerifyBytes(sig, digest))
	assert.True(t, pub.VerifyBytes(sig[:64], digest), "64-byte form must verify")

	for i := 0; i < 64; i += 7 {
		tampered := append([]byte{}, sig...)
		tampered[i] ^= 0x01
		assert.False(t, pub.VerifyBytes(tampered, digest), "bit flip at byte %d", i)
	}

	otherDigest := crypto.Keccak256([]byte("hellO"))
	assert.False(t, pub.VerifyBytes(sig, otherDigest))
	assert.False(t, pub.VerifyBytes(sig, digest[:31]))
	assert.False(t, pub.VerifyBytes(sig[:63], digest))
}

func TestVerifyRejectsHighS(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	sig, err := priv.Sign(helloDigest())
	require.NoError(t, err)

	var s btcec.ModNScalar
	sBytes := sig.S()
	s.SetBytes(&sBytes)
	s.Negate()
	highS := s.Bytes()

	raw := sig.Bytes()
	copy(raw[32:64], highS[:])
	assert.False(t, priv.Public().VerifyBytes(raw, crypto.Keccak256([]byte("hello"))))
}

func TestSignatureFromBytesBoundary(t *testing.T) {
	raw := mustHex(t, testSignatureHex)

	_, err := SignatureFromBytes(raw[:64])
	assert.ErrorIs(t, err, keypair.ErrInvalidSignature)
	_, err = SignatureFromBytes(append(raw, 0))
	assert.ErrorIs(t, err, keypair.ErrInvalidSignature)

	sig, err := SignatureFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, sig.Bytes())
}

func TestSignatureComponents(t *testing.T) {
	raw := mustHex(t, "d93fc9ae934d4f72db91cb149e7e84b50ca83b5a8a7b873b0fdb009546e3af47"+
		"786bfaf31af61eea6471dbb1bec7d94f73fb90887e4f04d0e9b85676c47ab02a00")
	sig, err := SignatureFromBytes(raw)
	require.NoError(t, err)

	r, s := sig.R(), sig.S()
	assert.Equal(t, raw[:32], r[:])
	assert.Equal(t, raw[32:64], s[:])
	assert.Equal(t, byte(0), sig.V())
	assert.Equal(t, raw[:64], sig.ToVerifySignature().Bytes())
}

func TestVerifySignatureFromBytes(t *testing.T) {
	raw := mustHex(t, testSignatureHex)
	for _, n := range []int{64, 65} {
		vs, err := VerifySignatureFromBytes(raw[:n])
		require.NoError(t, err)
		assert.Equal(t, raw[:64], vs.Bytes())
	}
	for _, n := range []int{0, 63, 66} {
		_, err := VerifySignatureFromBytes(make([]byte, n))
		assert.ErrorIs(t, err, keypair.ErrInvalidSignature, "len %d", n)
	}
}

func TestRecoverPublicKey(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	sig, err := priv.Sign(helloDigest())
	require.NoError(t, err)

	recovered, err := sig.RecoverPublicKey(helloDigest())
	require.NoError(t, err)
	assert.True(t, recovered.Equal(priv.Public()))

	bad := sig.Bytes()
	bad[64] = 7
	badSig, err := SignatureFromBytes(bad)
	require.NoError(t, err)
	_, err = badSig.RecoverPublicKey(helloDigest())
	assert.ErrorIs(t, err, keypair.ErrInvalidSignature)
}

func TestSharedKeyHash(t *testing.T) {
	priv, err := PrivateKeyFromHex("9cd3b16e10bd574fed3743d8e0de0b7b4e6c69f3245ab5a168ef010d22bfefa0")
	require.NoError(t, err)
	peer, err := PublicKeyFromHex("02a18a98316b5f52596e75bfa5ca9fa9912edd0c989b86b73d41bb64c9c6adb992")
	require.NoError(t, err)

	shared, err := priv.SharedKeyHash(peer)
	require.NoError(t, err)
	assert.Equal(t, "ef2cf705af8714b35c0855030f358f2bee356ff3579cea2607b2025d80133c3a", hex.EncodeToString(shared[:]))

	_, err = priv.SharedKeyHash(nil)
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
}

func TestSharedKeyHashIsSymmetric(t *testing.T) {
	a, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	b, err := PrivateKeyFromHex("9cd3b16e10bd574fed3743d8e0de0b7b4e6c69f3245ab5a168ef010d22bfefa0")
	require.NoError(t, err)

	ab, err := a.SharedKeyHash(b.Public())
	require.NoError(t, err)
	ba, err := b.SharedKeyHash(a.Public())
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestSignBytesRejectsWrongDigestLength(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	for _, n := range []int{0, 31, 33, 64} {
		_, err := priv.SignBytes(make([]byte, n))
		assert.ErrorIs(t, err, keypair.ErrInvalidSignMessage, "len %d", n)
	}
}

func TestWipe(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	pub := priv.Public()

	priv.Wipe()
	_, err = priv.Sign(helloDigest())
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
	_, err = priv.SharedKeyHash(pub)
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)

	priv.Wipe()
	var nilKey *PrivateKey
	nilKey.Wipe()
}

func TestKeyPair(t *testing.T) {
	kp, err := KeyPairFromHex(testSecretHex)
	require.NoError(t, err)
	defer kp.Wipe()

	assert.Equal(t, testCompressedHex, hex.EncodeToString(kp.Public().Bytes()))
	sig, err := kp.Sign(helloDigest())
	require.NoError(t, err)
	assert.True(t, kp.Verify(sig.ToVerifySignature(), helloDigest()))
	assert.Same(t, kp.Private().Public(), kp.Public())

	_, err = KeyPairFromBytes(make([]byte, 32))
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
	_, err = KeyPairFromHex("zz")
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
}

func FuzzPublicKeyFromBytes(f *testing.F) {
	f.Add(mustHex(f, testCompressedHex))
	f.Add(mustHex(f, testUncompressedHex))
	f.Add([]byte{0x02})
	f.Fuzz(func(t *testing.T, data []byte) {
		pub, err := PublicKeyFromBytes(data)
		if err != nil {
			return
		}
		again, err := PublicKeyFromBytes(pub.Bytes())
		require.NoError(t, err)
		assert.True(t, pub.Equal(again))
	})
}

func FuzzVerifyBytes(f *testing.F) {
	f.Add(mustHex(f, testSignatureHex), crypto.Keccak256([]byte("hello")))
	f.Add([]byte{}, []byte{})
	pub, err := PublicKeyFromHex(testCompressedHex)
	require.NoError(f, err)
	f.Fuzz(func(t *testing.T, sig, digest []byte) {
		_ = pub.VerifyBytes(sig, digest)
	})
}

func BenchmarkSign(b *testing.B) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(b, err)
	digest := helloDigest()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := priv.Sign(digest); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(b, err)
	digest := helloDigest()
	sig, err := priv.Sign(digest)
	require.NoError(b, err)
	vs := sig.ToVerifySignature()
	pub := priv.Public()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !pub.Verify(vs, digest) {
			b.Fatal("verify failed")
		}
	}
}

func TestSignRecoveryIDMatchesCompactHeader(t *testing.T) {
	priv, err := PrivateKeyFromHex(testSecretHex)
	require.NoError(t, err)
	defer priv.Wipe()

	seen := map[byte]bool{}
	for i := 0; i < 64; i++ {
		digest := [DigestSize]byte(crypto.Keccak256([]byte{byte(i)}))
		sig, err := priv.Sign(digest)
		require.NoError(t, err)
		require.LessOrEqual(t, sig.V(), byte(1))
		seen[sig.V()] = true

		compact := btcecCompact(t, priv, digest)
		assert.Equal(t, compactHeaderBase+sig.V(), compact[0], "digest %d", i)

		recovered, err := sig.RecoverPublicKey(digest)
		require.NoError(t, err)
		assert.True(t, recovered.Equal(priv.Public()), "digest %d", i)
	}
	assert.True(t, seen[0] && seen[1], "both recovery ids should occur over 64 digests")
}

func TestPrivateKeyFromHexRejectsMalformed(t *testing.T) {
	_, err := PrivateKeyFromHex(testSecretHex[:63] + "z")
	assert.ErrorIs(t, err, keypair.ErrInvalidSecretKey)
}

func btcecCompact(t *testing.T, k *PrivateKey, digest [DigestSize]byte) []byte {
	t.Helper()
	var out []byte
	require.NoError(t, k.withKey(func(priv *btcec.PrivateKey) error {
		out = ecdsa.SignCompact(priv, digest[:], true)
		return nil
	}))
	return out
}
