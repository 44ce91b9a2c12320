// Package waves implements the Waves flavor of Ed25519.
//
// Secrets are standard 32-byte Ed25519 seeds. Public keys, however, are
// published in Curve25519 (Montgomery u) form, which loses the sign of the
// Edwards x-coordinate. Signatures therefore carry that sign in the top bit
// of their last byte, and verification rebuilds the Edwards point from u and
// that bit.
//
// The same keys agree on an X25519 shared secret through SharedKey.
package waves
