// Package cardano implements Cardano extended Ed25519 keys (BIP32-Ed25519).
//
// An extended private key is kL(32) ‖ kR(32) ‖ chain code(32). kL is the
// signing scalar itself, already clamped when the key was generated, and kR
// is the nonce prefix. The matching public key is A(32) ‖ chain code(32)
// with A = kL·B.
//
// Keys may also come as spending ‖ staking pairs: 192-byte private keys and
// 128-byte public keys. Signing and verification always use the spending
// half; the staking half is carried along so that the encodings round-trip.
//
// Child keys are derived with the V2 scheme: hardened indices (>= 2^31) need
// the private key, soft indices can be derived from either side and agree.
package cardano
