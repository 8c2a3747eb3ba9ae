// Package privacy provides one-way pseudonymization helpers for log lines and
// audit records. Raw user identifiers must never appear in logs; callers hash
// them first so operators can correlate events without being able to recover
// the identifier.
package privacy

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// hashPrefixLen bounds log cardinality while keeping collisions negligible
// for correlation purposes.
const hashPrefixLen = 16

// HashID returns a short hex prefix of the SHA3-256 digest of an identifier.
// The full digest is never exposed; the prefix is for log correlation only.
func HashID(id string) string {
	if id == "" {
		return ""
	}
	sum := sha3.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])[:hashPrefixLen]
}

// HashIDFull returns the full hex SHA3-256 digest of an identifier. Used for
// audit records where a stable, collision-resistant pseudonym is required.
func HashIDFull(id string) string {
	if id == "" {
		return ""
	}
	sum := sha3.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}
