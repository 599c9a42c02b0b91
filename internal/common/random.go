package common

import (
	"crypto/rand"
	"math/big"
)

// passwordAlphabet holds the characters used for generated passwords.
// Letters and digits only, so the result is safe to read back to a user.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratedPasswordLength is the length of passwords produced by the
// reset-password flow.
const GeneratedPasswordLength = 8

// MakeRandomPassword returns a random alphanumeric string of the given
// length. Characters are drawn uniformly via crypto/rand.
func MakeRandomPassword(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b), nil
}
