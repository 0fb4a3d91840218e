package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/serverlist"
)

type Config struct {
	Test       bool
	MCP        bool
	Version    bool
	ServerFile string
	Strict     bool
	Timeout    time.Duration
	MaxTries   int
	Exhaustive bool
	Seed       uint64
	UserAgent  string
	LogLevel   string
	Debug      bool

	MetricsTextfile string
}

func newFlagSet(cfg *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("ipgetter", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&cfg.Test, "test", false, "Query every endpoint and report how consistent their answers are")
	fs.BoolVar(&cfg.MCP, "mcp", false, "Serve lookups as MCP tools over stdio")
	fs.BoolVar(&cfg.Version, "version", false, "Print version and exit")
	fs.StringVar(&cfg.ServerFile, "servers", "", "Server list file (one URL per line, '#' comments); built-in list if empty")
	fs.BoolVar(&cfg.Strict, "strict", false, "Fail instead of falling back to the built-in list when -servers cannot be used")
	fs.DurationVar(&cfg.Timeout, "timeout", extip.DefaultTimeout, "Timeout for each endpoint attempt (e.g. 5s, 30s)")
	fs.IntVar(&cfg.MaxTries, "max-tries", extip.DefaultMaxTries, "Number of random endpoints to try")
	fs.BoolVar(&cfg.Exhaustive, "exhaustive", false, "Try every endpoint in random order instead of -max-tries")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed for endpoint selection; 0 picks a random seed")
	fs.StringVar(&cfg.UserAgent, "user-agent", extip.DefaultUserAgent, "User-Agent header sent to endpoints")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	fs.BoolVar(&cfg.Debug, "debug", false, "Show debug lines in reports")
	fs.StringVar(&cfg.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")

	return fs
}

// ParseFlags parses command-line arguments (without the program name).
func ParseFlags(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := newFlagSet(cfg, output)
	fs.Usage = func() { ShowUsage(output) }
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.Test && cfg.MCP {
		return nil, fmt.Errorf("-test and -mcp are mutually exclusive")
	}
	return cfg, nil
}

// ToLibraryConfig converts the flags into a validated lookup configuration.
func (c *Config) ToLibraryConfig() (extip.Config, error) {
	lib := extip.DefaultConfig()
	lib.ServerFile = c.ServerFile
	lib.Timeout = c.Timeout
	lib.MaxTries = c.MaxTries
	lib.UserAgent = c.UserAgent
	if c.Strict {
		lib.LoadMode = serverlist.ModeStrict
	}
	if c.Exhaustive {
		lib.Policy = extip.PolicyExhaustive
	}

	if err := lib.Validate(); err != nil {
		return extip.Config{}, err
	}
	return lib, nil
}

func ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: ipgetter [options]\n\n")
	fmt.Fprintf(w, "Prints the public IPv4 address of this host.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs := newFlagSet(&Config{}, w)
	fs.PrintDefaults()
}
