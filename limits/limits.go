package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxKeyData is the largest key encoding accepted anywhere: a Cardano
	// spending+staking extended private key (2 x 96 bytes).
	MaxKeyData = 192

	// MaxSignatureData is the largest signature encoding: secp256k1 r ‖ s ‖ v.
	MaxSignatureData = 65

	// MaxProcessingBuffer is the absolute maximum for a message buffer (1MB).
	MaxProcessingBuffer = 1024 * 1024
)

var (
	// ErrBufferEmpty indicates an empty buffer was provided.
	ErrBufferEmpty = errors.New("empty buffer")

	// ErrBufferTooLarge indicates a buffer exceeds its maximum size.
	ErrBufferTooLarge = errors.New("buffer too large")
)

// ValidateBufferSize rejects sizes of zero or above maxSize. It takes the
// size rather than a slice so callers can check a C length before copying.
func ValidateBufferSize(size uintptr, maxSize int) error {
	if size == 0 {
		return ErrBufferEmpty
	}
	if maxSize < 0 || size > uintptr(maxSize) {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrBufferTooLarge, size, maxSize)
	}
	return nil
}

// ValidateOptionalSize is ValidateBufferSize for buffers that may be empty,
// such as a message passed to verify.
func ValidateOptionalSize(size uintptr, maxSize int) error {
	if size == 0 {
		return nil
	}
	return ValidateBufferSize(size, maxSize)
}

// ValidateKeyData validates a key buffer size against MaxKeyData.
func ValidateKeyData(size uintptr) error {
	if err := ValidateBufferSize(size, MaxKeyData); err != nil {
		return fmt.Errorf("key data: %w", err)
	}
	return nil
}
