// Package zeroize keeps secret key material in buffers that are reliably
// overwritten with zeros.
//
// Every private key in this module stores its scalar bytes in a [Bytes] owner.
// The owner is wiped explicitly through Wipe, and a finalizer wipes it when
// the key becomes unreachable, so forgotten keys do not linger in the heap
// with their contents intact.
//
// Short-lived copies, such as a hex-decoded secret or an expanded ed25519
// scalar, go through [With] or a deferred [ZeroBytes]:
//
//	err := zeroize.With(secret, func(buf []byte) error {
//	    return use(buf)
//	})
//
// The scratch buffer is zeroed on every exit path, including early error
// returns and panics.
package zeroize
