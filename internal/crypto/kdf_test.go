package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.False(t, bytes.Equal(s1, s2))
}

func TestDeriveKEK_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	params := DefaultKDFParams()

	k1 := DeriveKEK([]byte("correcthorse"), salt, params)
	k2 := DeriveKEK([]byte("correcthorse"), salt, params)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKEK_DifferentPassphraseDifferentKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	params := DefaultKDFParams()

	k1 := DeriveKEK([]byte("correcthorse"), salt, params)
	k2 := DeriveKEK([]byte("wrongpassphrase"), salt, params)

	assert.NotEqual(t, k1, k2)
}

func TestDeriveKEK_DifferentSaltDifferentKey(t *testing.T) {
	params := DefaultKDFParams()
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	salt2, err := GenerateSalt()
	require.NoError(t, err)

	k1 := DeriveKEK([]byte("correcthorse"), salt1, params)
	k2 := DeriveKEK([]byte("correcthorse"), salt2, params)

	assert.NotEqual(t, k1, k2)
}
