package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent fingerprints page content for the rebuild skip decision.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:8])
}
