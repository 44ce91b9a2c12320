package ffi

import (
	"errors"
	"sync/atomic"

	"github.com/opd-ai/twkeypair/limits"
	"github.com/opd-ai/twkeypair/logging"
)

// Options bounds the buffers accepted from C callers.
type Options struct {
	// MaxMessageSize caps the message passed to verify.
	MaxMessageSize int
	// MaxKeySize caps the key bytes passed to create.
	MaxKeySize int
}

// NewOptions returns the default bounds.
func NewOptions() *Options {
	return &Options{
		MaxMessageSize: limits.MaxProcessingBuffer,
		MaxKeySize:     limits.MaxKeyData,
	}
}

var current atomic.Pointer[Options]

func init() {
	current.Store(NewOptions())
}

// Configure replaces the active bounds. A nil opts restores the defaults.
// Bounds may be tightened freely but never raised past the package limits.
func Configure(opts *Options) error {
	if opts == nil {
		current.Store(NewOptions())
		return nil
	}
	if opts.MaxMessageSize <= 0 || opts.MaxMessageSize > limits.MaxProcessingBuffer {
		return errors.New("max message size out of range")
	}
	if opts.MaxKeySize <= 0 || opts.MaxKeySize > limits.MaxKeyData {
		return errors.New("max key size out of range")
	}

	cp := *opts
	current.Store(&cp)
	logging.NewLogger("ffi", "Configure").
		WithField("max_message_size", cp.MaxMessageSize).
		WithField("max_key_size", cp.MaxKeySize).
		Info("FFI limits configured")
	return nil
}

// CurrentOptions returns a copy of the active bounds.
func CurrentOptions() Options {
	return *current.Load()
}
