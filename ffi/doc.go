// Package ffi holds the handle logic behind the C ABI exported by capi.
//
// Public keys cross the boundary as opaque pointers. Each pointer is a
// malloc'ed TWPublicKey struct carrying a registry id; the Go value it
// stands for lives in a process-wide map guarded by a sync.RWMutex. The
// caller owns the pointer from PublicKeyCreateWithData until it passes it
// to PublicKeyDelete.
//
// Every failure collapses to NULL or false here. The reason is written to
// the log and never returned across the boundary:
//
//	key := ffi.PublicKeyCreateWithData(&data[0], uintptr(len(data)), 0)
//	if key == nil {
//	    // undecodable bytes, unknown type, NULL data or oversize input
//	}
//	defer ffi.PublicKeyDelete(key)
//
// Buffer sizes are checked against the bounds in [Options] before any byte
// is read.
package ffi
