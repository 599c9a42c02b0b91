package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSecret_KnownDigest(t *testing.T) {
	assert.Equal(t,
		"240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
		HashSecret("admin123"))
	assert.Equal(t,
		"8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918",
		HashSecret("admin"))
}

func TestHashAnswer_CaseInsensitive(t *testing.T) {
	assert.Equal(t, HashSecret("fluffy"), HashAnswer("FlUfFy"))
	assert.Equal(t, HashAnswer("admin"), HashSecret("admin"))
}

func TestHashSecret_DistinctInputsDistinctDigests(t *testing.T) {
	assert.NotEqual(t, HashSecret("password1"), HashSecret("password2"))
}
