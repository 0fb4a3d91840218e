package extip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/R167/ipgetter/serverlist"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, PolicySampled, cfg.Policy)
	assert.Equal(t, 5, cfg.MaxTries)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, serverlist.ModeFallback, cfg.LoadMode)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(c *Config) {}},
		{name: "exhaustive ignores max tries", mutate: func(c *Config) { c.Policy = PolicyExhaustive; c.MaxTries = 0 }},
		{name: "sampled zero tries", mutate: func(c *Config) { c.MaxTries = 0 }, wantErr: true},
		{name: "sampled negative tries", mutate: func(c *Config) { c.MaxTries = -3 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "unknown policy", mutate: func(c *Config) { c.Policy = Policy(9) }, wantErr: true},
		{name: "unknown load mode", mutate: func(c *Config) { c.LoadMode = serverlist.Mode(9) }, wantErr: true},
		{name: "strict", mutate: func(c *Config) { c.LoadMode = serverlist.ModeStrict }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Tries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTries = 3
	assert.Equal(t, 3, cfg.tries())

	cfg.Policy = PolicyExhaustive
	assert.Equal(t, 0, cfg.tries())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "sampled", PolicySampled.String())
	assert.Equal(t, "exhaustive", PolicyExhaustive.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}
