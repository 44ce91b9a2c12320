package zeroize

import (
	"crypto/subtle"
	"errors"
	"runtime"
)

// SecureWipe erases the contents of a byte slice containing sensitive data.
// It returns an error if the byte slice is nil.
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	// x ^ x through an assembly routine; the compiler cannot elide the store.
	subtle.XORBytes(data, data, data)
	runtime.KeepAlive(data)
	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from SecureWipe.
func ZeroBytes(data []byte) {
	_ = SecureWipe(data)
}

// Bytes owns a buffer of secret key material. The buffer is wiped by Wipe and,
// failing that, when the garbage collector finalizes the owner. Bytes must not
// be copied by value once created.
type Bytes struct {
	buf []byte
}

// New copies src into a fresh owned buffer. The caller keeps responsibility
// for wiping src.
func New(src []byte) *Bytes {
	s := &Bytes{buf: make([]byte, len(src))}
	copy(s.buf, src)
	runtime.SetFinalizer(s, (*Bytes).Wipe)
	return s
}

// Expose returns the owned buffer. The slice is only valid until Wipe.
func (s *Bytes) Expose() []byte {
	if s == nil {
		return nil
	}
	return s.buf
}

// Len returns the length of the owned buffer.
func (s *Bytes) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// Wipe zeroes the owned buffer. It is safe to call more than once and on a nil
// receiver.
func (s *Bytes) Wipe() {
	if s == nil || s.buf == nil {
		return
	}
	ZeroBytes(s.buf)
	s.buf = nil
	runtime.SetFinalizer(s, nil)
}

// With copies src into a scratch buffer, runs fn on it and wipes the scratch
// buffer before returning, on success, on error and on panic alike.
func With(src []byte, fn func(secret []byte) error) error {
	scratch := New(src)
	defer scratch.Wipe()
	return fn(scratch.Expose())
}
