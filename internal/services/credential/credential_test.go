package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.True(t, Verify("password123", hash))
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := Hash("password123")
	require.NoError(t, err)

	assert.False(t, Verify("wrongpass", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("password123")
	require.NoError(t, err)
	second, err := Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashInputLimit(t *testing.T) {
	hash, err := Hash(strings.Repeat("a", MaxInputBytes))
	require.NoError(t, err)
	assert.True(t, Verify(strings.Repeat("a", MaxInputBytes), hash))

	_, err = Hash(strings.Repeat("a", MaxInputBytes+1))
	require.Error(t, err)
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("password123", "not-a-bcrypt-hash"))
	assert.False(t, Verify("password123", ""))
}

func TestHashUTF8Password(t *testing.T) {
	hash, err := Hash("pässwörd🐍123")
	require.NoError(t, err)

	assert.True(t, Verify("pässwörd🐍123", hash))
	assert.False(t, Verify("passwörd🐍123", hash))
}

func TestDummyHashNeverMatches(t *testing.T) {
	assert.False(t, Verify("password123", DummyHash))
	assert.False(t, Verify("password", DummyHash))
	assert.False(t, Verify("", DummyHash))
}
