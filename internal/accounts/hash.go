package accounts

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashSecret returns the hex-encoded SHA-256 digest of the UTF-8 bytes of
// secret. No salt: the reset flow relies on digest equality, and the stores
// serve a single-tenant desktop-class tool. Anyone reusing this for a
// multi-user system should switch to a salted KDF.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// HashAnswer hashes a security answer. Answers are compared
// case-insensitively, so the input is lower-cased first.
func HashAnswer(answer string) string {
	return HashSecret(strings.ToLower(answer))
}
