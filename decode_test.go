// File: iniconf/decode_test.go
package iniconf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	store, err := ReadString(`[server]
host = localhost
port = 8080
debug = true
timeout = 30s
tags = alpha,beta,gamma
`, "mem")
	require.NoError(t, err)

	type serverConf struct {
		Host    string        `ini:"host"`
		Port    int           `ini:"port"`
		Debug   bool          `ini:"debug"`
		Timeout time.Duration `ini:"timeout"`
		Tags    []string      `ini:"tags"`
	}

	var conf serverConf
	require.NoError(t, store.Scan("server", &conf))

	assert.Equal(t, "localhost", conf.Host)
	assert.Equal(t, 8080, conf.Port)
	assert.True(t, conf.Debug)
	assert.Equal(t, 30*time.Second, conf.Timeout)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, conf.Tags)
}

func TestScanDefault(t *testing.T) {
	store := NewStore().SetDefault("log_level", "debug")

	var conf struct {
		LogLevel string `ini:"log_level"`
	}
	require.NoError(t, store.ScanDefault(&conf))
	assert.Equal(t, "debug", conf.LogLevel)
}

func TestScanAbsentGroupLeavesTargetZero(t *testing.T) {
	var conf struct {
		Host string `ini:"host"`
	}
	require.NoError(t, NewStore().Scan("nothing", &conf))
	assert.Empty(t, conf.Host)
}

func TestScanRejectsBadTarget(t *testing.T) {
	store := NewStore().Set("g", "k", "v")

	var conf struct{}
	assert.Error(t, store.Scan("g", conf), "non-pointer")
	assert.Error(t, store.Scan("g", nil), "nil")
}

func TestScanConversionFailure(t *testing.T) {
	store := NewStore().Set("server", "port", "not a number")

	var conf struct {
		Port int `ini:"port"`
	}
	err := store.Scan("server", &conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server")
}
