package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemporaryPassword(t *testing.T) {
	pw, err := GenerateTemporaryPassword(16)
	require.NoError(t, err)
	assert.Len(t, pw, 16)
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(passwordCharset, r), "unexpected character %q", r)
	}
}

func TestGenerateTemporaryPasswordDefaultsLength(t *testing.T) {
	pw, err := GenerateTemporaryPassword(0)
	require.NoError(t, err)
	assert.Len(t, pw, 16)
}

func TestGenerateTemporaryPasswordVaries(t *testing.T) {
	a, err := GenerateTemporaryPassword(16)
	require.NoError(t, err)
	b, err := GenerateTemporaryPassword(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
