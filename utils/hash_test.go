package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPIN(t *testing.T) {
	hash, err := HashPIN("4321")
	require.NoError(t, err)
	assert.NotEqual(t, "4321", hash)
	assert.True(t, CheckPIN(hash, "4321"))
	assert.False(t, CheckPIN(hash, "1234"))
	assert.False(t, CheckPIN("", "4321"))

	empty, err := HashPIN("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
