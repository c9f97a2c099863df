// Package signing provides the stand-in signer capability for the demo
// wallet. The tokens it produces are cosmetic: they follow the SIG_0x
// proof-token shape but carry no cryptographic meaning. The core treats
// them as opaque either way.
package signing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/ghostbank/ghostbank-go/interfaces"
)

// GhostSigner issues SIG_0x proof tokens from random bytes plus a
// timestamp suffix.
type GhostSigner struct{}

var _ interfaces.Signer = (*GhostSigner)(nil)

// NewGhostSigner creates a signer
func NewGhostSigner() *GhostSigner {
	return &GhostSigner{}
}

// Sign returns an opaque proof token for the given transaction. The
// payload is accepted for interface compatibility; this demo signer
// does not derive the token from it.
func (s *GhostSigner) Sign(txID string, payload string) (string, error) {
	if txID == "" {
		return "", fmt.Errorf("sign: empty transaction id")
	}

	buf := make([]byte, 15)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("sign %s: %w", txID, err)
	}

	return "SIG_0x" + hex.EncodeToString(buf) + strconv.FormatInt(time.Now().UnixMilli(), 16), nil
}
