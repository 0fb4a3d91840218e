package main

import (
	"context"
	"fmt"
	"time"

	"github.com/R167/ipgetter/checkers"
	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/checker"
	"github.com/R167/ipgetter/internal/mcp"
	"github.com/R167/ipgetter/internal/output"
	"github.com/R167/ipgetter/internal/runner"
	"github.com/R167/ipgetter/internal/security"
)

// buildRegistry exposes every checker with an MCP tool definition. base is the
// configuration from the command line; tool input may override parts of it.
func buildRegistry(base extip.Config, newContext func(context.Context, extip.Config) *runner.RunContext) *mcp.CheckerRegistry {
	registry := mcp.NewCheckerRegistry()
	for _, c := range checkers.AllCheckers() {
		def := c.MCPToolDefinition()
		if def == nil {
			continue
		}
		registry.Register(def.Name, def.Description, adaptChecker(c, base, newContext))
	}
	return registry
}

func adaptChecker(c checker.Checker, base extip.Config, newContext func(context.Context, extip.Config) *runner.RunContext) mcp.CheckFunction {
	return func(ctx context.Context, input *mcp.ToolInput) (*mcp.ToolOutput, error) {
		cfg, err := applyToolInput(base, input)
		if err != nil {
			return nil, err
		}

		out := output.NewBufferedOutput()
		report, err := runner.Run(newContext(ctx, cfg).WithOutput(out), c)
		if report == nil {
			return nil, err
		}
		return toToolOutput(report, out), err
	}
}

// applyToolInput returns base with the non-zero fields of input applied.
func applyToolInput(base extip.Config, input *mcp.ToolInput) (extip.Config, error) {
	cfg := base
	if input == nil {
		return cfg, nil
	}

	if len(input.Endpoints) > 0 {
		endpoints, err := security.ValidateEndpoints(input.Endpoints)
		if err != nil {
			return extip.Config{}, fmt.Errorf("%w: %w", extip.ErrInvalidConfig, err)
		}
		cfg.Servers = endpoints
	}
	if input.TimeoutSeconds < 0 || input.MaxTries < 0 {
		return extip.Config{}, fmt.Errorf("%w: timeout_seconds and max_tries must not be negative", extip.ErrInvalidConfig)
	}
	if input.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(input.TimeoutSeconds) * time.Second
	}
	if input.MaxTries > 0 {
		cfg.MaxTries = input.MaxTries
		cfg.Policy = extip.PolicySampled
	}
	if input.Exhaustive {
		cfg.Policy = extip.PolicyExhaustive
	}

	if err := cfg.Validate(); err != nil {
		return extip.Config{}, err
	}
	return cfg, nil
}

func toToolOutput(report *checker.Report, out *output.BufferedOutput) *mcp.ToolOutput {
	return &mcp.ToolOutput{
		IP:        report.IP,
		Endpoint:  report.Endpoint,
		Attempts:  report.Attempts,
		Servers:   report.Servers,
		Counts:    report.Counts,
		Endpoints: report.Endpoints,
		Summary:   report.Summary,
		Report:    out.String(),
	}
}
