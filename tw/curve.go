package tw

// Curve selects the signing algorithm for a private key. The numeric values
// are part of the C ABI.
type Curve uint32

const (
	CurveSecp256k1              Curve = 0
	CurveEd25519                Curve = 1
	CurveEd25519Blake2bNano     Curve = 2
	CurveEd25519ExtendedCardano Curve = 5
	CurveStarkex                Curve = 6
)

// CurveFromRaw maps a C value to a Curve. Values 3 and 4, and anything past
// 6, are not supported.
func CurveFromRaw(raw uint32) (Curve, bool) {
	switch c := Curve(raw); c {
	case CurveSecp256k1, CurveEd25519, CurveEd25519Blake2bNano, CurveEd25519ExtendedCardano, CurveStarkex:
		return c, true
	default:
		return 0, false
	}
}

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case CurveSecp256k1:
		return "Secp256k1"
	case CurveEd25519:
		return "Ed25519"
	case CurveEd25519Blake2bNano:
		return "Ed25519Blake2bNano"
	case CurveEd25519ExtendedCardano:
		return "Ed25519ExtendedCardano"
	case CurveStarkex:
		return "Starkex"
	default:
		return "Unknown"
	}
}

// PublicKeyType selects the encoding of a public key. The numeric values are
// part of the C ABI.
type PublicKeyType uint32

const (
	PublicKeyTypeSecp256k1              PublicKeyType = 0
	PublicKeyTypeSecp256k1Extended      PublicKeyType = 1
	PublicKeyTypeEd25519                PublicKeyType = 4
	PublicKeyTypeEd25519Blake2b         PublicKeyType = 5
	PublicKeyTypeEd25519ExtendedCardano PublicKeyType = 7
	PublicKeyTypeStarkex                PublicKeyType = 8
)

// PublicKeyTypeFromRaw maps a C value to a PublicKeyType. Values 2, 3 and 6,
// and anything past 8, are not supported.
func PublicKeyTypeFromRaw(raw uint32) (PublicKeyType, bool) {
	switch ty := PublicKeyType(raw); ty {
	case PublicKeyTypeSecp256k1, PublicKeyTypeSecp256k1Extended, PublicKeyTypeEd25519,
		PublicKeyTypeEd25519Blake2b, PublicKeyTypeEd25519ExtendedCardano, PublicKeyTypeStarkex:
		return ty, true
	default:
		return 0, false
	}
}

// String returns the key type name.
func (ty PublicKeyType) String() string {
	switch ty {
	case PublicKeyTypeSecp256k1:
		return "Secp256k1"
	case PublicKeyTypeSecp256k1Extended:
		return "Secp256k1Extended"
	case PublicKeyTypeEd25519:
		return "Ed25519"
	case PublicKeyTypeEd25519Blake2b:
		return "Ed25519Blake2b"
	case PublicKeyTypeEd25519ExtendedCardano:
		return "Ed25519ExtendedCardano"
	case PublicKeyTypeStarkex:
		return "Starkex"
	default:
		return "Unknown"
	}
}
