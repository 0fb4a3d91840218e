package extip

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/R167/ipgetter/internal/metrics"
)

// Result describes a successful lookup.
type Result struct {
	IP       string
	Endpoint string // Endpoint that answered
	Attempts int    // Attempts made, including the successful one
}

// MyIP returns the public IPv4 address using DefaultConfig. The whole call is
// bounded by DefaultCallTimeout on top of any deadline already on ctx.
func MyIP(ctx context.Context) (string, error) {
	g, err := New(DefaultConfig())
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()
	return g.ExternalIP(ctx)
}

// ExternalIP returns the public IPv4 address.
func (g *Getter) ExternalIP(ctx context.Context) (string, error) {
	res, err := g.Lookup(ctx)
	if err != nil {
		return "", err
	}
	return res.IP, nil
}

// Lookup tries candidates in selection order until one yields an address.
func (g *Getter) Lookup(ctx context.Context) (Result, error) {
	candidates := g.candidates()
	if tries := g.cfg.tries(); tries > len(g.servers) {
		g.logger.Debug("max tries exceeds server list, clamping",
			"max_tries", tries,
			"servers", len(g.servers))
	}

	var errs error
	for i, endpoint := range candidates {
		if err := ctx.Err(); err != nil {
			g.metrics.ObserveLookup(false)
			return Result{}, err
		}

		outcome := g.attempt(ctx, endpoint)
		if outcome.Present() {
			g.logger.Debug("external address found",
				"endpoint", endpoint,
				"ip", outcome.IP,
				"attempt", i+1)
			g.metrics.ObserveLookup(true)
			return Result{IP: outcome.IP, Endpoint: endpoint, Attempts: i + 1}, nil
		}

		g.logger.Debug("endpoint attempt failed",
			"endpoint", endpoint,
			"attempt", i+1,
			"err", outcome.Err)
		errs = multierr.Append(errs, outcome.Err)
	}

	g.metrics.ObserveLookup(false)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{}, fmt.Errorf("%w after %d attempts: %w", ErrMaxAttemptsExceeded, len(candidates), errs)
}

// fetchResult is a fetch outcome stamped with the clock time it completed.
type fetchResult struct {
	outcome Outcome
	at      time.Time
}

// attempt runs one fetch under its own deadline. On expiry the attempt context
// is cancelled, which aborts the in-flight request, and attempt waits up to
// abandonAfter for the fetcher to return. A fetcher that ignores cancellation
// is abandoned and left to finish on its own.
func (g *Getter) attempt(ctx context.Context, endpoint string) Outcome {
	start := g.clock.Now()
	deadline := start.Add(g.cfg.Timeout)
	attemptCtx, cancel := g.clock.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	done := make(chan fetchResult, 1)
	go func() {
		outcome := g.fetcher.Fetch(attemptCtx, endpoint)
		done <- fetchResult{outcome: outcome, at: g.clock.Now()}
	}()

	var outcome Outcome
	select {
	case res := <-done:
		outcome = res.outcome
	case <-attemptCtx.Done():
		cancel()
		res, ok := g.drain(done, endpoint)
		// An answer that completed before the deadline won the race.
		if ok && res.outcome.Present() && res.at.Before(deadline) && ctx.Err() == nil {
			outcome = res.outcome
			break
		}

		took := g.clock.Since(start)
		if err := ctx.Err(); err != nil {
			g.metrics.ObserveAttempt(metrics.ResultFailure, took)
			return Outcome{Endpoint: endpoint, Err: &AttemptError{Endpoint: endpoint, Err: err}}
		}
		g.metrics.ObserveAttempt(metrics.ResultTimeout, took)
		return Outcome{
			Endpoint: endpoint,
			Err:      &AttemptError{Endpoint: endpoint, Err: fmt.Errorf("%w after %v", ErrAttemptTimeout, g.cfg.Timeout)},
		}
	}

	took := g.clock.Since(start)
	if outcome.Present() && !ValidIPv4(outcome.IP) {
		outcome = failed(endpoint, fmt.Errorf("%w: fetcher returned %q", ErrNoAddress, outcome.IP))
	}
	if outcome.Present() {
		g.metrics.ObserveAttempt(metrics.ResultSuccess, took)
	} else {
		if outcome.Err == nil {
			outcome.Err = &AttemptError{Endpoint: endpoint, Err: ErrFetchFailure}
		}
		g.metrics.ObserveAttempt(metrics.ResultFailure, took)
	}
	outcome.Endpoint = endpoint
	return outcome
}

// drain waits for a cancelled fetch to return. ok is false when the fetcher
// did not return within abandonAfter.
func (g *Getter) drain(done <-chan fetchResult, endpoint string) (fetchResult, bool) {
	select {
	case res := <-done:
		return res, true
	case <-g.clock.After(g.abandonAfter):
		g.logger.Warn("fetcher ignored cancellation, abandoning attempt",
			"endpoint", endpoint,
			"waited", g.abandonAfter)
		return fetchResult{}, false
	}
}
