package consistency

import (
	"context"
	"fmt"

	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/checker"
	"github.com/R167/ipgetter/internal/output"
)

type ConsistencyChecker struct{}

func NewConsistencyChecker() checker.Checker {
	return &ConsistencyChecker{}
}

func (c *ConsistencyChecker) Name() string {
	return "consistency"
}

func (c *ConsistencyChecker) Description() string {
	return "Query every endpoint and compare the addresses they report"
}

func (c *ConsistencyChecker) Icon() string {
	return "🔍"
}

func (c *ConsistencyChecker) Flag() string {
	return "test"
}

func (c *ConsistencyChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "check_consistency",
		Description: "Query every IP echo endpoint in the server list and tally the addresses they report",
	}
}

func (c *ConsistencyChecker) Run(ctx context.Context, getter *extip.Getter, out output.Output) (*checker.Report, error) {
	out.Section(c.Icon(), "Endpoint Consistency Test")

	tally := getter.Audit(ctx)
	WriteReport(out, tally)

	return &checker.Report{
		Servers:   tally.Total(),
		Counts:    tally.Frequencies(),
		Endpoints: tally.ByEndpoint(),
		Summary:   summarize(tally),
	}, nil
}

// WriteReport renders a tally: one line per distinct value, then the answer of
// every endpoint.
func WriteReport(out output.Output, tally *extip.Tally) {
	out.Info("Number of servers: %d", tally.Total())
	out.Info("IP's:")
	for _, count := range tally.Counts() {
		out.Detail("%s = %d %s", count.Value, count.N, occurrences(count.N))
	}

	counts := tally.Counts()
	switch {
	case tally.Total() == 0:
		out.Warning("No endpoints queried")
	case tally.Consistent():
		out.Success("All endpoints agree")
	case len(counts) == 1:
		out.Error("No endpoint returned an address")
	default:
		if top := counts[0]; top.Present {
			out.Warning("Endpoints disagree; most common answer is %s (%d of %d)", top.Value, top.N, tally.Total())
		} else {
			out.Warning("Endpoints disagree; most endpoints are broken (%d of %d)", top.N, tally.Total())
		}
	}

	out.Info("Results:")
	for _, r := range tally.Results {
		if r.Present() {
			out.Detail("%s: %s", r.Endpoint, r.IP)
		} else {
			out.Detail("%s: %s", r.Endpoint, extip.AbsentLabel)
			out.Debug("%v", r.Err)
		}
	}
}

func summarize(tally *extip.Tally) string {
	counts := tally.Counts()
	if len(counts) == 0 {
		return "No endpoints queried"
	}
	if tally.Consistent() {
		return fmt.Sprintf("All %d endpoints report %s", tally.Total(), counts[0].Value)
	}
	return fmt.Sprintf("%d endpoints, %d distinct answers", tally.Total(), len(counts))
}

func occurrences(n int) string {
	if n == 1 {
		return "occurrence"
	}
	return "occurrences"
}
