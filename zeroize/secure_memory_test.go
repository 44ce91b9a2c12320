package zeroize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestSecureWipe(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, SecureWipe(data))
	assert.True(t, allZero(data))

	assert.Error(t, SecureWipe(nil))
	assert.NoError(t, SecureWipe([]byte{}))
}

func TestZeroBytes(t *testing.T) {
	data := []byte{0xff, 0xee, 0xdd}
	ZeroBytes(data)
	assert.True(t, allZero(data))

	// Must not panic.
	ZeroBytes(nil)
}

func TestBytesOwnership(t *testing.T) {
	src := []byte{9, 8, 7, 6}
	s := New(src)

	src[0] = 0
	assert.Equal(t, []byte{9, 8, 7, 6}, s.Expose(), "New must copy its input")
	assert.Equal(t, 4, s.Len())

	view := s.Expose()
	s.Wipe()
	assert.True(t, allZero(view), "the backing array must be zeroed")
	assert.Nil(t, s.Expose())
	assert.Equal(t, 0, s.Len())

	// Wiping twice and wiping nil are both no-ops.
	s.Wipe()
	var nilOwner *Bytes
	nilOwner.Wipe()
	assert.Nil(t, nilOwner.Expose())
}

func TestWithWipesOnEveryPath(t *testing.T) {
	var seen []byte

	err := With([]byte{1, 2, 3}, func(secret []byte) error {
		seen = secret
		assert.Equal(t, []byte{1, 2, 3}, secret)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, allZero(seen), "scratch buffer must be wiped after success")

	wantErr := errors.New("boom")
	err = With([]byte{4, 5, 6}, func(secret []byte) error {
		seen = secret
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.True(t, allZero(seen), "scratch buffer must be wiped after an error")

	assert.Panics(t, func() {
		_ = With([]byte{7, 8, 9}, func(secret []byte) error {
			seen = secret
			panic("unexpected")
		})
	})
	assert.True(t, allZero(seen), "scratch buffer must be wiped after a panic")
}
