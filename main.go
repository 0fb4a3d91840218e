package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/R167/ipgetter/checkers"
	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/checker"
	"github.com/R167/ipgetter/internal/cli"
	"github.com/R167/ipgetter/internal/logging"
	"github.com/R167/ipgetter/internal/mcp"
	"github.com/R167/ipgetter/internal/metrics"
	"github.com/R167/ipgetter/internal/output"
	"github.com/R167/ipgetter/internal/runner"
)

var version = "dev"

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := cli.ParseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitUsage
	}

	if cfg.Version {
		fmt.Fprintf(stdout, "ipgetter %s\n", version)
		return exitOK
	}

	logger := logging.Setup(cfg.LogLevel)
	output.SetDebugMode(cfg.Debug)

	libCfg, err := cfg.ToLibraryConfig()
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitUsage
	}

	var (
		reg *prometheus.Registry
		m   *metrics.Metrics
	)
	if cfg.MetricsTextfile != "" {
		reg = prometheus.NewRegistry()
		m = metrics.New(reg)
		defer func() {
			if err := metrics.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
				logger.Error("failed to write metrics textfile", "path", cfg.MetricsTextfile, "err", err)
			}
		}()
	}

	newContext := func(ctx context.Context, c extip.Config) *runner.RunContext {
		return runner.NewRunContext(ctx, c).
			WithLogger(logger).
			WithSeed(cfg.Seed).
			WithMetrics(m)
	}

	if cfg.MCP {
		// Fail fast on an unusable server list.
		if _, err := newContext(ctx, libCfg).Getter(); err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return exitUsage
		}

		registry := buildRegistry(libCfg, newContext)
		logger.Info("starting MCP server", "tools", registry.Names())
		if err := mcp.RunServer(ctx, registry, version); err != nil && !errors.Is(err, context.Canceled) {
			return exitFailed
		}
		return exitOK
	}

	c := selectChecker(cfg)
	out := output.NewStreamingOutput(stdout)
	report, err := runner.Run(newContext(ctx, libCfg).WithOutput(out), c)
	return exitCode(report, err, stderr, logger)
}

// selectChecker returns the checker enabled by a flag, or the default one.
func selectChecker(cfg *cli.Config) checker.Checker {
	enabled := map[string]bool{
		"test": cfg.Test,
	}

	var fallback checker.Checker
	for _, c := range checkers.AllCheckers() {
		if c.Flag() == "" {
			if fallback == nil {
				fallback = c
			}
			continue
		}
		if enabled[c.Flag()] {
			return c
		}
	}
	return fallback
}

func exitCode(report *checker.Report, err error, stderr io.Writer, logger *slog.Logger) int {
	switch {
	case err == nil:
		return exitOK
	case report == nil:
		// The run never started: bad configuration or an unusable server list.
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitUsage
	default:
		logger.Debug("run failed", "err", err)
		return exitFailed
	}
}
