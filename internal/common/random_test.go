package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandomPassword_LengthAndAlphabet(t *testing.T) {
	pw, err := MakeRandomPassword(GeneratedPasswordLength)
	require.NoError(t, err)
	require.Len(t, pw, GeneratedPasswordLength)

	for _, r := range pw {
		isLower := r >= 'a' && r <= 'z'
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		assert.True(t, isLower || isUpper || isDigit, "unexpected character %q", r)
	}
}

func TestMakeRandomPassword_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		pw, err := MakeRandomPassword(GeneratedPasswordLength)
		require.NoError(t, err)
		seen[pw] = true
	}
	// 10 draws from a 62^8 space colliding into one value would mean a
	// broken generator.
	assert.Greater(t, len(seen), 1)
}
