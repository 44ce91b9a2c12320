// Package keypair holds the pieces shared by every curve in twkeypair: the
// error taxonomy, the generic key traits and hex decoding.
//
// The curve implementations live in subpackages:
//
//   - secp256k1: ECDSA with recoverable 65-byte signatures and ECDH
//   - ed25519/sha512: standard Ed25519
//   - ed25519/blake2b: Ed25519 with Blake2b-512, as used by Nano
//   - ed25519/cardano: BIP32-Ed25519 extended keys with child derivation
//   - ed25519/waves: Curve25519 keys with XEdDSA-style signatures
//   - starkex: ECDSA over the STARK curve with RFC 6979 nonces
//
// Package tw dispatches to them by a numeric curve or public key type, and
// package ffi with the capi command exposes the public key part over a C ABI.
//
// # Getting Started
//
//	priv, err := tw.PrivateKeyFromBytes(secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer priv.Wipe()
//
//	sig, err := priv.Sign(digest, tw.CurveSecp256k1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pub, err := priv.PublicKey(tw.PublicKeyTypeSecp256k1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pub.Verify(sig, digest))
//
// # Error Handling
//
// Every failure wraps one of the sentinels in this package and can be tested
// with errors.Is. Kind recovers the sentinel from a wrapped error. A
// signature that does not match is reported as false from Verify, never as
// an error.
//
// # Secret Material
//
// Private keys keep their secret bytes in zeroize.Bytes owners. Call Wipe
// when a key is no longer needed; a finalizer wipes keys that are dropped
// without it. Secrets are never logged.
package keypair
