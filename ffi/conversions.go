package ffi

import (
	"fmt"
	"math"
	"unsafe"
)

// safeUintptrToInt converts a C length to a Go length.
//
// CWE-190: Integer Overflow or Wraparound
// gosec G115: Integer overflow check
func safeUintptrToInt(val uintptr) (int, error) {
	if uint64(val) > math.MaxInt {
		return 0, fmt.Errorf("uintptr value exceeds int max: %d (max: %d)", val, math.MaxInt)
	}
	return int(val), nil
}

// borrow views size bytes at ptr without copying. A NULL pointer is only
// accepted together with a zero size.
func borrow(ptr *byte, size uintptr) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if ptr == nil {
		return nil, fmt.Errorf("NULL buffer with size %d", size)
	}
	n, err := safeUintptrToInt(size)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice(ptr, n), nil
}
