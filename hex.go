package keypair

import (
	"encoding/hex"
	"strings"

	"github.com/opd-ai/twkeypair/zeroize"
)

// DecodeHex decodes a hex string with an optional 0x prefix. Curve packages
// use it for their FromHex constructors and wrap the error with the
// appropriate sentinel. On error the partially decoded bytes are wiped and
// nil is returned.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		zeroize.ZeroBytes(b)
		return nil, err
	}
	return b, nil
}
