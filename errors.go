package keypair

import (
	"errors"
)

// The closed set of failures shared by every curve implementation. Curve
// packages wrap these with context via fmt.Errorf("%w: ...", Err...), so
// callers should always compare with errors.Is.
var (
	// ErrInvalidSecretKey indicates secret bytes of the wrong length or an
	// out-of-range scalar.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrInvalidPublicKey indicates a malformed point or encoding.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignature indicates signature bytes that cannot be decoded.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidSignMessage indicates a message that the curve cannot sign,
	// e.g. a secp256k1 digest that is not 32 bytes long.
	ErrInvalidSignMessage = errors.New("invalid sign message")

	// ErrSignatureVerifyError indicates an internal failure while verifying.
	// A signature that simply does not match is not an error.
	ErrSignatureVerifyError = errors.New("signature verify error")

	// ErrSigningError indicates that the scalar arithmetic could not produce a
	// valid signature for this input. Retrying with the same input will fail
	// again.
	ErrSigningError = errors.New("signing error")
)

var kinds = [...]error{
	ErrInvalidSecretKey,
	ErrInvalidPublicKey,
	ErrInvalidSignature,
	ErrInvalidSignMessage,
	ErrSignatureVerifyError,
	ErrSigningError,
}

// Kind returns the sentinel from the taxonomy that err wraps, or nil when err
// does not belong to it.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
