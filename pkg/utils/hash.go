package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// LeadRef identifies a lead in logs and the CRM without exposing the address.
// Case and surrounding whitespace are ignored.
func LeadRef(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:16]
}
