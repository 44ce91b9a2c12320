// Package ed25519 is the EdDSA engine shared by the ed25519 key variants.
//
// The engine is parameterized by a [Hasher]: SHA-512 gives RFC 8032 Ed25519,
// Blake2b-512 gives the Nano variant. Key formats live in the subpackages:
//
//   - sha512: standard 32-byte seeds
//   - blake2b: 32-byte seeds expanded and signed with Blake2b-512
//   - cardano: BIP32-Ed25519 extended keys with chain codes
//   - waves: standard signing with Curve25519 (Montgomery) public keys
//
// Group arithmetic comes from filippo.io/edwards25519.
package ed25519
