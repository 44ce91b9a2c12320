// Package starkex implements ECDSA over the STARK-friendly curve used by
// StarkEx and Starknet.
//
// The curve is y² = x³ + x + β over the 252-bit prime field. Private keys
// are 32-byte big-endian scalars below the curve order, public keys are the
// 32-byte x-coordinate of d·G, and signatures are r(32) ‖ s(32).
//
// Messages are field elements below 2^251. Nonces are derived with RFC 6979
// (HMAC-SHA256) using the same message padding as the StarkEx reference
// code, so signatures are reproducible across implementations.
//
// Curve arithmetic comes from github.com/consensys/gnark-crypto.
package starkex
