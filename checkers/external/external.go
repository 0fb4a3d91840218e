package external

import (
	"context"
	"fmt"

	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/checker"
	"github.com/R167/ipgetter/internal/output"
)

type ExternalChecker struct{}

func NewExternalChecker() checker.Checker {
	return &ExternalChecker{}
}

func (c *ExternalChecker) Name() string {
	return "external"
}

func (c *ExternalChecker) Description() string {
	return "External IPv4 address discovery"
}

func (c *ExternalChecker) Icon() string {
	return "🌍"
}

func (c *ExternalChecker) Flag() string {
	return ""
}

func (c *ExternalChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "get_external_ip",
		Description: "Discover the public IPv4 address by querying a random selection of IP echo services",
	}
}

func (c *ExternalChecker) Run(ctx context.Context, getter *extip.Getter, out output.Output) (*checker.Report, error) {
	cfg := getter.Config()
	out.Section(c.Icon(), "External Address Discovery")
	out.Debug("policy=%s max_tries=%d timeout=%v servers=%d",
		cfg.Policy, cfg.MaxTries, cfg.Timeout, len(getter.Servers()))

	res, err := getter.Lookup(ctx)
	if err != nil {
		displayFailure(out, err)
		return &checker.Report{
			Servers: len(getter.Servers()),
			Summary: fmt.Sprintf("Could not determine external IP address: %v", err),
		}, err
	}

	out.Success("External IPv4: %s (via %s)", res.IP, res.Endpoint)
	out.Detail("Attempts: %d", res.Attempts)

	return &checker.Report{
		IP:       res.IP,
		Endpoint: res.Endpoint,
		Attempts: res.Attempts,
		Servers:  len(getter.Servers()),
		Summary:  fmt.Sprintf("External IPv4 %s via %s", res.IP, res.Endpoint),
	}, nil
}

func displayFailure(out output.Output, err error) {
	out.Error("Could not determine external IP address")
	out.Detail("%v", err)
	out.Info("ℹ️  This could indicate:")
	out.Detail("• No internet connectivity")
	out.Detail("• Firewall blocking outbound connections")
	out.Detail("• DNS resolution issues")
	out.Detail("• Every selected endpoint is down; try -exhaustive")
}
