// File: iniconf/discovery_test.go
package iniconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCLIFlag(t *testing.T) {
	conf := writeTemp(t, "app.ini", "[g]\nk = v\n")

	t.Run("SeparateValue", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("app")
		opts.Args = []string{"--config", conf}
		path, found := Discover(opts)
		assert.True(t, found)
		assert.Equal(t, conf, path)
	})

	t.Run("EqualsValue", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("app")
		opts.Args = []string{"--config=" + conf}
		path, found := Discover(opts)
		assert.True(t, found)
		assert.Equal(t, conf, path)
	})

	t.Run("ExplicitButMissing", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("app")
		opts.Args = []string{"--config", "/no/such/file.ini"}
		path, found := Discover(opts)
		// The explicit choice is surfaced even though it is missing.
		assert.False(t, found)
		assert.Equal(t, "/no/such/file.ini", path)
	})
}

func TestDiscoverEnvVar(t *testing.T) {
	conf := writeTemp(t, "app.ini", "[g]\nk = v\n")
	t.Setenv("APP_CONFIG", conf)

	opts := DefaultDiscoveryOptions("app")
	opts.Args = nil
	path, found := Discover(opts)
	assert.True(t, found)
	assert.Equal(t, conf, path)
}

func TestDiscoverSearchPaths(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "app.conf")
	require.NoError(t, os.WriteFile(conf, []byte("[g]\nk = v\n"), 0644))

	opts := DiscoveryOptions{
		Name:       "app",
		Extensions: []string{".ini", ".conf"},
		Paths:      []string{dir},
	}
	path, found := Discover(opts)
	assert.True(t, found)
	assert.Equal(t, conf, path)
}

func TestDiscoverExtensionOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.ini"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.conf"), []byte(""), 0644))

	opts := DiscoveryOptions{
		Name:       "app",
		Extensions: []string{".ini", ".conf"},
		Paths:      []string{dir},
	}
	path, found := Discover(opts)
	require.True(t, found)
	assert.Equal(t, filepath.Join(dir, "app.ini"), path)
}

func TestDiscoverNothingFound(t *testing.T) {
	opts := DiscoveryOptions{
		Name:       "definitely-not-here",
		Extensions: []string{".ini"},
		Paths:      []string{t.TempDir()},
	}
	path, found := Discover(opts)
	assert.False(t, found)
	assert.Empty(t, path)
}
