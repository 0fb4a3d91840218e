package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R167/ipgetter/checkers"
	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/checker"
	"github.com/R167/ipgetter/internal/mcp"
	"github.com/R167/ipgetter/internal/runner"
)

func TestApplyToolInput(t *testing.T) {
	base := extip.DefaultConfig()

	tests := []struct {
		name    string
		input   *mcp.ToolInput
		check   func(t *testing.T, cfg extip.Config)
		wantErr bool
	}{
		{
			name:  "nil input keeps base",
			input: nil,
			check: func(t *testing.T, cfg extip.Config) {
				assert.Equal(t, base, cfg)
			},
		},
		{
			name: "overrides",
			input: &mcp.ToolInput{
				Endpoints:      []string{" https://api.ipify.org ", "http://ip.42.pl/raw"},
				TimeoutSeconds: 3,
				MaxTries:       2,
			},
			check: func(t *testing.T, cfg extip.Config) {
				assert.Equal(t, []string{"https://api.ipify.org", "http://ip.42.pl/raw"}, cfg.Servers)
				assert.Equal(t, 3*time.Second, cfg.Timeout)
				assert.Equal(t, 2, cfg.MaxTries)
				assert.Equal(t, extip.PolicySampled, cfg.Policy)
			},
		},
		{
			name:  "exhaustive",
			input: &mcp.ToolInput{Exhaustive: true},
			check: func(t *testing.T, cfg extip.Config) {
				assert.Equal(t, extip.PolicyExhaustive, cfg.Policy)
			},
		},
		{name: "bad scheme", input: &mcp.ToolInput{Endpoints: []string{"ftp://example.com"}}, wantErr: true},
		{name: "negative timeout", input: &mcp.ToolInput{TimeoutSeconds: -1}, wantErr: true},
		{name: "negative tries", input: &mcp.ToolInput{MaxTries: -4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := applyToolInput(base, tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, extip.ErrInvalidConfig), "err = %v", err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestBuildRegistry(t *testing.T) {
	fetch := extip.FetcherFunc(func(ctx context.Context, endpoint string) extip.Outcome {
		return extip.Outcome{Endpoint: endpoint, IP: "192.0.2.10"}
	})
	newContext := func(ctx context.Context, cfg extip.Config) *runner.RunContext {
		return runner.NewRunContext(ctx, cfg).
			WithSeed(1).
			WithOptions(extip.WithFetcher(fetch))
	}

	base := extip.DefaultConfig()
	registry := buildRegistry(base, newContext)
	assert.Equal(t, []string{"check_consistency", "get_external_ip"}, registry.Names())

	tool := adaptChecker(checkerByTool(t, "get_external_ip"), base, newContext)
	out, err := tool(context.Background(), &mcp.ToolInput{Endpoints: []string{"http://a.example", "http://b.example"}})
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", out.IP)
	assert.Equal(t, 2, out.Servers)
	assert.Contains(t, out.Report, "192.0.2.10")

	audit := adaptChecker(checkerByTool(t, "check_consistency"), base, newContext)
	out, err = audit(context.Background(), &mcp.ToolInput{Endpoints: []string{"http://a.example", "http://b.example"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"192.0.2.10": 2}, out.Counts)
	assert.Equal(t, map[string]string{"http://a.example": "192.0.2.10", "http://b.example": "192.0.2.10"}, out.Endpoints)
	assert.Contains(t, out.Report, "Number of servers: 2")
}

func TestAdaptChecker_InvalidInput(t *testing.T) {
	newContext := func(ctx context.Context, cfg extip.Config) *runner.RunContext {
		return runner.NewRunContext(ctx, cfg)
	}
	tool := adaptChecker(checkerByTool(t, "get_external_ip"), extip.DefaultConfig(), newContext)

	out, err := tool(context.Background(), &mcp.ToolInput{Endpoints: []string{"not a url"}})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, extip.ErrInvalidConfig)
}

func checkerByTool(t *testing.T, name string) checker.Checker {
	t.Helper()
	c := checkers.GetCheckerByTool(name)
	require.NotNil(t, c, "no checker for tool %s", name)
	return c
}
