// Package limits centralizes the size bounds for buffers received over the C
// ABI.
//
// Key buffers are bounded by MaxKeyData (192 bytes, the Cardano double key).
// Message buffers are bounded by MaxProcessingBuffer (1MB) unless the caller
// configures a different limit through ffi.Options. Lengths are checked
// before any bytes are copied out of C memory:
//
//	if err := limits.ValidateKeyData(size); err != nil {
//	    return nil
//	}
//
// Both ErrBufferEmpty and ErrBufferTooLarge are wrapped with the offending
// size; compare with errors.Is.
package limits
