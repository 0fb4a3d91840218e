package extip

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/R167/ipgetter/internal/metrics"
	"github.com/R167/ipgetter/internal/security"
	"github.com/R167/ipgetter/serverlist"
)

// Getter resolves the external address against a fixed server list.
// A Getter is safe for concurrent use; each call runs its attempts sequentially.
type Getter struct {
	cfg     Config
	servers serverlist.List
	fetcher Fetcher
	clock   clock.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics

	// abandonAfter bounds the wait for a fetcher after its deadline fired.
	abandonAfter time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option customises a Getter.
type Option func(*Getter)

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(g *Getter) {
		g.fetcher = f
	}
}

// WithClock sets the clock used for attempt deadlines.
func WithClock(c clock.Clock) Option {
	return func(g *Getter) {
		g.clock = c
	}
}

// WithRand sets the random source used to pick candidates.
func WithRand(r *rand.Rand) Option {
	return func(g *Getter) {
		g.rng = r
	}
}

// WithSeed makes candidate selection deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Getter) {
		g.logger = l
	}
}

// WithRegisterer registers lookup metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(g *Getter) {
		g.metrics = metrics.New(reg)
	}
}

// WithMetrics records into m, which may be shared by several Getters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Getter) {
		g.metrics = m
	}
}

// New validates cfg, loads the server list and returns a Getter.
func New(cfg Config, opts ...Option) (*Getter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Getter{
		cfg:    cfg,
		clock:  clock.New(),
		logger: slog.Default(),

		abandonAfter: DefaultAbandonAfter,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano())))
	}
	if g.fetcher == nil {
		g.fetcher = NewHTTPFetcher(security.NewHTTPClient(clientConfig(cfg.Timeout)), cfg.UserAgent)
	}

	if len(cfg.Servers) > 0 {
		g.servers = serverlist.List(cfg.Servers).Clone()
	} else {
		servers, err := serverlist.Load(cfg.ServerFile, cfg.LoadMode, g.logger)
		if err != nil {
			return nil, err
		}
		g.servers = servers
	}

	return g, nil
}

// Servers returns a copy of the server list in use.
func (g *Getter) Servers() serverlist.List {
	return g.servers.Clone()
}

// Config returns the configuration the Getter was built with.
func (g *Getter) Config() Config {
	return g.cfg
}

// clientConfig bounds every phase of a request by the attempt timeout. Audit
// relies on this bound alone.
func clientConfig(timeout time.Duration) security.ClientConfig {
	cc := security.DefaultClientConfig()
	cc.Timeout = timeout
	cc.DialTimeout = timeout
	cc.TLSHandshakeTimeout = timeout
	cc.ResponseHeaderTimeout = timeout
	return cc
}

func (g *Getter) candidates() []string {
	g.rngMu.Lock()
	defer g.rngMu.Unlock()
	return Select(g.servers, g.cfg.tries(), g.rng)
}
