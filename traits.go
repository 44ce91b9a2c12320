package keypair

// KeyPair gives read-only access to an owned private key and the public key
// derived from it.
type KeyPair[Private, Public any] interface {
	Private() Private
	Public() Public
}

// SigningKey produces a Signature over a curve-specific Message: a 32-byte
// digest for secp256k1 and starkex, raw bytes for the ed25519 family.
type SigningKey[Message, Signature any] interface {
	Sign(message Message) (Signature, error)
}

// VerifyingKey reports whether signature is valid for message. A wrong
// signature is a false result, not an error.
type VerifyingKey[Message, Signature any] interface {
	Verify(signature Signature, message Message) bool
}
