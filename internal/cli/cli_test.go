package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/serverlist"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags(nil, io.Discard)
	require.NoError(t, err)

	assert.False(t, cfg.Test)
	assert.False(t, cfg.MCP)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.MaxTries)
	assert.Equal(t, extip.DefaultUserAgent, cfg.UserAgent)

	lib, err := cfg.ToLibraryConfig()
	require.NoError(t, err)
	assert.Equal(t, extip.DefaultConfig(), lib)
}

func TestParseFlags_All(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-test",
		"-servers", "/etc/ipgetter/servers",
		"-strict",
		"-timeout", "5s",
		"-max-tries", "3",
		"-seed", "42",
		"-user-agent", "ipgetter/1.0",
		"-log-level", "debug",
		"-debug",
		"-metrics-textfile", "/var/lib/node_exporter/ipgetter.prom",
	}, io.Discard)
	require.NoError(t, err)

	assert.True(t, cfg.Test)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/lib/node_exporter/ipgetter.prom", cfg.MetricsTextfile)

	lib, err := cfg.ToLibraryConfig()
	require.NoError(t, err)
	assert.Equal(t, "/etc/ipgetter/servers", lib.ServerFile)
	assert.Equal(t, serverlist.ModeStrict, lib.LoadMode)
	assert.Equal(t, 5*time.Second, lib.Timeout)
	assert.Equal(t, 3, lib.MaxTries)
	assert.Equal(t, extip.PolicySampled, lib.Policy)
	assert.Equal(t, "ipgetter/1.0", lib.UserAgent)
}

func TestParseFlags_Exhaustive(t *testing.T) {
	cfg, err := ParseFlags([]string{"-exhaustive", "-max-tries", "0"}, io.Discard)
	require.NoError(t, err)

	lib, err := cfg.ToLibraryConfig()
	require.NoError(t, err)
	assert.Equal(t, extip.PolicyExhaustive, lib.Policy)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-web"}},
		{"bad duration", []string{"-timeout", "soon"}},
		{"positional", []string{"extra"}},
		{"test and mcp", []string{"-test", "-mcp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestToLibraryConfig_Invalid(t *testing.T) {
	for _, args := range [][]string{{"-max-tries", "0"}, {"-timeout", "0s"}} {
		cfg, err := ParseFlags(args, io.Discard)
		require.NoError(t, err)

		_, err = cfg.ToLibraryConfig()
		assert.ErrorIs(t, err, extip.ErrInvalidConfig, "args %v", args)
	}
}

func TestShowUsage(t *testing.T) {
	var buf bytes.Buffer
	ShowUsage(&buf)

	for _, flag := range []string{"-test", "-mcp", "-servers", "-max-tries", "-exhaustive", "-timeout"} {
		assert.True(t, strings.Contains(buf.String(), flag), "usage missing %s", flag)
	}
}
