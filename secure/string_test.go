// File: iniconf/secure/string_test.go
package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValue(t *testing.T) {
	s := NewString("hunter2")
	assert.Equal(t, "hunter2", s.Value())
	assert.Equal(t, "hunter2", s.String())
	assert.Equal(t, 7, s.Len())
}

func TestStringCloseWipesBacking(t *testing.T) {
	backing := []byte("top secret")
	s := NewStringFromBytes(backing)

	require.NoError(t, s.Close())

	assert.Zero(t, s.Len())
	assert.Empty(t, s.Value())
	// The original buffer was zeroed, not just forgotten.
	for i, b := range backing {
		assert.Zerof(t, b, "byte %d not wiped", i)
	}
}

func TestStringCloseTwice(t *testing.T) {
	s := NewString("x")
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestStringNewStringCopies(t *testing.T) {
	original := "keep me"
	s := NewString(original)
	require.NoError(t, s.Close())
	// Closing the wrapper must not touch the source string.
	assert.Equal(t, "keep me", original)
}

func TestStringBytesAliases(t *testing.T) {
	s := NewString("abc")
	s.Bytes()[0] = 'x'
	assert.Equal(t, "xbc", s.Value())
}

func TestStringEqual(t *testing.T) {
	a := NewString("same")
	b := NewString("same")
	c := NewString("other")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	require.NoError(t, b.Close())
	assert.False(t, a.Equal(b))
}
