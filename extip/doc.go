// Package extip discovers the public IPv4 address of the host by asking third-party
// HTTP endpoints that echo the requester's address.
//
// A Getter picks a random subset of its server list (or a random ordering of the
// whole list), then tries the candidates one at a time. Each attempt runs under its
// own deadline; the first endpoint that answers with a dotted-quad address wins and
// no further endpoints are contacted. When every candidate fails the lookup returns
// an error wrapping ErrMaxAttemptsExceeded.
//
// Usage Example:
//
//	ip, err := extip.MyIP(ctx)
//
//	cfg := extip.DefaultConfig()
//	cfg.Timeout = 5 * time.Second
//	cfg.MaxTries = 3
//	g, err := extip.New(cfg)
//	ip, err := g.ExternalIP(ctx)
//
// Audit queries every endpoint in the list and tallies the answers. It exists to
// spot endpoints that are broken or report a stale address; its result is
// informational and does not influence lookups.
package extip
