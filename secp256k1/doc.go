// Package secp256k1 implements keys, recoverable ECDSA signatures and ECDH
// over the secp256k1 curve.
//
// Messages are 32-byte digests; hashing is the caller's job. Signatures are
// deterministic (RFC 6979), normalized to low S and laid out as
// r(32) ‖ s(32) ‖ v(1) with v the recovery id:
//
//	priv, err := secp256k1.PrivateKeyFromHex("afeefca74d9a325cf1d6b6911d61a65c32afa8e02bd5e78e2e4ac2910bab45f5")
//	if err != nil {
//	    return err
//	}
//	sig, err := priv.Sign(digest)
//	ok := priv.Public().Verify(sig.ToVerifySignature(), digest)
//
// Point and scalar arithmetic come from github.com/btcsuite/btcd/btcec/v2.
package secp256k1
