// Package tw selects a curve implementation at runtime.
//
// [PrivateKey] holds raw secret bytes and signs with whichever [Curve] the
// caller names; [PublicKey] is a closed union over the per-curve public keys,
// chosen by [PublicKeyType]. Neither type does any cryptography itself:
//
//	priv, err := tw.PrivateKeyFromBytes(secret)
//	if err != nil {
//	    return err
//	}
//	defer priv.Wipe()
//	sig, err := priv.Sign(digest, tw.CurveSecp256k1)
//	pub, err := priv.PublicKey(tw.PublicKeyTypeSecp256k1)
//	ok := pub.Verify(sig, digest)
//
// The numeric values of Curve and PublicKeyType are fixed by the C ABI.
package tw
