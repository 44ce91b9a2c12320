package main

import "C"

import (
	"os"
	"unsafe"

	"github.com/opd-ai/twkeypair/ffi"
	"github.com/opd-ai/twkeypair/logging"
)

// This is the main package required for building as c-shared.
func main() {}

const logLevelEnv = "TWKEYPAIR_LOG_LEVEL"

func init() {
	if err := logging.SetLevel(os.Getenv(logLevelEnv)); err != nil {
		logging.NewLogger("capi", "init").
			WithError(err, "set_log_level").
			WithField("env", logLevelEnv).
			Warn("Ignoring invalid log level")
	}
}

//export tw_public_key_create_with_data
func tw_public_key_create_with_data(data *byte, size uintptr, ty uint32) unsafe.Pointer {
	return ffi.PublicKeyCreateWithData(data, size, ty)
}

// tw_public_key_verify returns false for messages above the configured
// maximum size (1 MiB by default) without reading them, even if the
// signature is valid.
//
//export tw_public_key_verify
func tw_public_key_verify(key unsafe.Pointer, sig *byte, sigLen uintptr, msg *byte, msgLen uintptr) bool {
	return ffi.PublicKeyVerify(key, sig, sigLen, msg, msgLen)
}

//export tw_public_key_delete
func tw_public_key_delete(key unsafe.Pointer) {
	ffi.PublicKeyDelete(key)
}
