package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefreshToken(t *testing.T) {
	first, err := NewRefreshToken()
	require.NoError(t, err)
	second, err := NewRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first.Value, second.Value)
	assert.NotEqual(t, first.Value, first.Hash)
	assert.Equal(t, HashRefreshToken(first.Value), first.Hash)
	assert.Len(t, first.Hash, 64)
}

func TestVerifyRefreshToken(t *testing.T) {
	rt, err := NewRefreshToken()
	require.NoError(t, err)

	assert.True(t, VerifyRefreshToken(rt.Value, rt.Hash))
	assert.False(t, VerifyRefreshToken("forged", rt.Hash))
	assert.False(t, VerifyRefreshToken(rt.Hash, rt.Hash))
	assert.False(t, VerifyRefreshToken("", ""))
}
