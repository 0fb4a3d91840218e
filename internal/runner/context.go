package runner

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/metrics"
	"github.com/R167/ipgetter/internal/output"
)

// RunContext carries what a checker run needs: the lookup configuration, the
// Getter options and the output sink.
//
//	rc := NewRunContext(ctx, cfg).
//	    WithOutput(output.NewStreamingOutput(os.Stdout)).
//	    WithSeed(42)
type RunContext struct {
	Ctx     context.Context
	Config  extip.Config
	Output  output.Output
	Options []extip.Option
}

func NewRunContext(ctx context.Context, cfg extip.Config) *RunContext {
	return &RunContext{
		Ctx:    ctx,
		Config: cfg,
		Output: output.NewNoOpOutput(),
	}
}

func (rc *RunContext) WithOutput(out output.Output) *RunContext {
	rc.Output = out
	return rc
}

// WithSeed makes candidate selection deterministic. A zero seed is ignored.
func (rc *RunContext) WithSeed(seed uint64) *RunContext {
	if seed != 0 {
		rc.Options = append(rc.Options, extip.WithSeed(seed))
	}
	return rc
}

func (rc *RunContext) WithLogger(logger *slog.Logger) *RunContext {
	rc.Options = append(rc.Options, extip.WithLogger(logger))
	return rc
}

func (rc *RunContext) WithRegisterer(reg prometheus.Registerer) *RunContext {
	if reg != nil {
		rc.Options = append(rc.Options, extip.WithRegisterer(reg))
	}
	return rc
}

// WithMetrics shares m across every Getter built from this context.
func (rc *RunContext) WithMetrics(m *metrics.Metrics) *RunContext {
	if m != nil {
		rc.Options = append(rc.Options, extip.WithMetrics(m))
	}
	return rc
}

func (rc *RunContext) WithOptions(opts ...extip.Option) *RunContext {
	rc.Options = append(rc.Options, opts...)
	return rc
}

// Getter builds a Getter from the context's configuration and options.
func (rc *RunContext) Getter() (*extip.Getter, error) {
	return extip.New(rc.Config, rc.Options...)
}
