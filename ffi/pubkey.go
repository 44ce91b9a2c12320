package ffi

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct TWPublicKey {
	uint64_t id;
} TWPublicKey;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/twkeypair/limits"
	"github.com/opd-ai/twkeypair/logging"
	"github.com/opd-ai/twkeypair/tw"
)

var (
	publicKeys   = make(map[uint64]*tw.PublicKey)
	nextHandleID uint64 = 1
	handleMutex  sync.RWMutex
)

// PublicKeyCreateWithData copies size bytes at data, parses them as a public
// key of raw type ty and returns an owned handle, or nil.
func PublicKeyCreateWithData(data *byte, size uintptr, ty uint32) unsafe.Pointer {
	log := logging.NewLogger("ffi", "PublicKeyCreateWithData").
		WithFields(logrus.Fields{"size": size, "type": ty})
	log.Entry("public key from C buffer")
	defer log.Exit()

	if data == nil {
		log.Warn("NULL key data")
		return nil
	}
	if err := limits.ValidateKeyData(size); err != nil {
		log.WithError(err, "validate_size").Warn("Rejected key data")
		return nil
	}
	if err := limits.ValidateBufferSize(size, CurrentOptions().MaxKeySize); err != nil {
		log.WithError(err, "validate_configured_size").Warn("Rejected key data")
		return nil
	}
	keyType, ok := tw.PublicKeyTypeFromRaw(ty)
	if !ok {
		log.Warn("Unknown public key type")
		return nil
	}

	view, err := borrow(data, size)
	if err != nil {
		log.WithError(err, "borrow").Warn("Rejected key data")
		return nil
	}
	owned := make([]byte, len(view))
	copy(owned, view)

	key, err := tw.PublicKeyFromBytes(owned, keyType)
	if err != nil {
		log.WithError(err, "parse").Warn("Rejected key data")
		return nil
	}

	handleMutex.Lock()
	id := nextHandleID
	nextHandleID++
	publicKeys[id] = key
	handleMutex.Unlock()

	handle := (*C.TWPublicKey)(C.malloc(C.size_t(unsafe.Sizeof(C.TWPublicKey{}))))
	handle.id = C.uint64_t(id)
	log.WithFields(logging.OperationFields("create", "success", logrus.Fields{"handle": id})).
		Debug("Created public key handle")
	return unsafe.Pointer(handle)
}

// PublicKeyVerify reports whether the signature verifies the message under
// the key behind handle. Any length, including zero, is accepted; a NULL or
// unknown handle verifies nothing.
//
// Messages longer than Options.MaxMessageSize (1 MiB by default) are not
// read and verify as false, even when the signature over them is valid.
// Callers with larger payloads should sign and verify a digest instead.
func PublicKeyVerify(handle unsafe.Pointer, sig *byte, sigLen uintptr, msg *byte, msgLen uintptr) bool {
	log := logging.NewLogger("ffi", "PublicKeyVerify")

	key := lookup(handle)
	if key == nil {
		log.WithCaller().Error("Verify called with a NULL or released key")
		return false
	}
	if err := limits.ValidateOptionalSize(msgLen, CurrentOptions().MaxMessageSize); err != nil {
		log.WithError(err, "validate_size").Warn("Rejected message")
		return false
	}
	if err := limits.ValidateOptionalSize(sigLen, limits.MaxSignatureData); err != nil {
		log.WithError(err, "validate_size").Debug("Signature too long")
		return false
	}

	sigBytes, err := borrow(sig, sigLen)
	if err != nil {
		log.WithError(err, "borrow").Warn("Rejected signature")
		return false
	}
	msgBytes, err := borrow(msg, msgLen)
	if err != nil {
		log.WithError(err, "borrow").Warn("Rejected message")
		return false
	}
	return key.Verify(sigBytes, msgBytes)
}

// PublicKeyDelete releases handle. A nil handle is a no-op.
func PublicKeyDelete(handle unsafe.Pointer) {
	if handle == nil {
		return
	}
	id := uint64((*C.TWPublicKey)(handle).id)

	handleMutex.Lock()
	delete(publicKeys, id)
	handleMutex.Unlock()

	C.free(handle)
	logging.NewLogger("ffi", "PublicKeyDelete").WithField("handle", id).Debug("Released public key handle")
}

// PublicKeyOf returns the key behind handle, or nil.
func PublicKeyOf(handle unsafe.Pointer) *tw.PublicKey {
	return lookup(handle)
}

// LiveHandles reports how many handles have been created and not deleted.
func LiveHandles() int {
	handleMutex.RLock()
	defer handleMutex.RUnlock()
	return len(publicKeys)
}

func lookup(handle unsafe.Pointer) *tw.PublicKey {
	if handle == nil {
		return nil
	}
	id := uint64((*C.TWPublicKey)(handle).id)

	handleMutex.RLock()
	defer handleMutex.RUnlock()
	return publicKeys[id]
}
