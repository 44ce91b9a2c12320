// Package main provides the C API for twkeypair, so that wallets written in
// C, Swift or Kotlin can verify signatures with the same code Go callers use.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libtwkeypair.so ./capi/
//
// This generates:
//   - libtwkeypair.so: The shared library
//   - libtwkeypair.h: Auto-generated C header file with function declarations
//
// # C API Usage
//
//	#include "libtwkeypair.h"
//
//	// 0 = Secp256k1, 1 = Secp256k1Extended, 4 = Ed25519,
//	// 5 = Ed25519Blake2b, 7 = Ed25519ExtendedCardano, 8 = Starkex
//	void *key = tw_public_key_create_with_data(pub, pub_len, 4);
//	if (key == NULL) {
//	    fprintf(stderr, "Invalid public key\n");
//	    return 1;
//	}
//
//	bool ok = tw_public_key_verify(key, sig, sig_len, msg, msg_len);
//
//	// Cleanup
//	tw_public_key_delete(key);
//
// # Instance Management
//
// Keys are opaque pointers. The pointer returned by
// tw_public_key_create_with_data belongs to the caller and must be released
// exactly once with tw_public_key_delete. Passing NULL to delete is a no-op.
//
// # Error Handling
//
// Failures are reported as NULL or false only. Set TWKEYPAIR_LOG_LEVEL to
// debug, info, warn or error before loading the library to see why a call
// failed.
//
// # Thread Safety
//
// All three functions may be called from any thread. Deleting a key while
// another thread is verifying with it is a caller-side race.
package main
