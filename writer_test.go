// File: iniconf/writer_test.go
package iniconf

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDeterministicOrder(t *testing.T) {
	store := NewStore().
		Set("zeta", "k", "v").
		Set("alpha", "b", "2").
		Set("alpha", "a", "1").
		SetDefault("var1", "value")

	var sb strings.Builder
	require.NoError(t, Write(store, &sb))

	want := "[DEFAULT]\n" +
		"var1 = value\n" +
		"[alpha]\n" +
		"a = 1\n" +
		"b = 2\n" +
		"[zeta]\n" +
		"k = v\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ini")

	conf := NewStore().
		SetDefault("var1", "value").
		Set("Some Group", "my variable", "my value").
		Set("Some Group", "tricky", "value = with = equals")

	require.NoError(t, WriteFile(conf, path))

	read, err := ReadFile(path)
	require.NoError(t, err)

	v, ok := read.GetDefault("var1")
	require.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Equal(t, "my value", read.MustGet("Some Group", "my variable"))
	// Values containing '=' survive the round trip.
	assert.Equal(t, "value = with = equals", read.MustGet("Some Group", "tricky"))
	assert.Equal(t, conf.Len(), read.Len())
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ini")
	require.NoError(t, WriteFile(NewStore().Set("old", "k", "v"), path))
	require.NoError(t, WriteFile(NewStore().Set("new", "k", "v"), path))

	read, err := ReadFile(path)
	require.NoError(t, err)
	_, ok := read.Get("old", "k")
	assert.False(t, ok)
	assert.Equal(t, "v", read.MustGet("new", "k"))
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(NewStore().Set("g", "k", "v"),
		filepath.Join(t.TempDir(), "no-such-dir", "out.ini"))
	require.Error(t, err)

	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestWriteEmptyStore(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(NewStore(), &sb))
	assert.Empty(t, sb.String())
}
