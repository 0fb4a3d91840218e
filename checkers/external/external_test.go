package external

import (
	"context"
	"strings"
	"testing"

	"github.com/R167/ipgetter/extip"
	"github.com/R167/ipgetter/internal/output"
)

func newGetter(t *testing.T, answers map[string]string) *extip.Getter {
	t.Helper()

	servers := make([]string, 0, len(answers))
	for e := range answers {
		servers = append(servers, e)
	}

	cfg := extip.DefaultConfig()
	cfg.Servers = servers
	cfg.Policy = extip.PolicyExhaustive

	fetcher := extip.FetcherFunc(func(ctx context.Context, endpoint string) extip.Outcome {
		return extip.Outcome{Endpoint: endpoint, IP: answers[endpoint]}
	})

	g, err := extip.New(cfg, extip.WithFetcher(fetcher), extip.WithSeed(1))
	if err != nil {
		t.Fatalf("extip.New() error = %v", err)
	}
	return g
}

func TestExternalChecker_Metadata(t *testing.T) {
	c := NewExternalChecker()

	if c.Name() != "external" {
		t.Errorf("Name() = %q, want 'external'", c.Name())
	}
	if c.Flag() != "" {
		t.Errorf("Flag() = %q, external is the default checker", c.Flag())
	}
	if def := c.MCPToolDefinition(); def == nil || def.Name != "get_external_ip" {
		t.Errorf("MCPToolDefinition() = %+v", def)
	}
}

func TestExternalChecker_Run(t *testing.T) {
	g := newGetter(t, map[string]string{
		"http://down.example": "",
		"http://up.example":   "203.0.113.7",
	})
	out := output.NewBufferedOutput()

	report, err := NewExternalChecker().Run(context.Background(), g, out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.IP != "203.0.113.7" {
		t.Errorf("report.IP = %q, want 203.0.113.7", report.IP)
	}
	if report.Endpoint != "http://up.example" {
		t.Errorf("report.Endpoint = %q", report.Endpoint)
	}
	if report.Servers != 2 {
		t.Errorf("report.Servers = %d, want 2", report.Servers)
	}

	text := out.String()
	if !strings.Contains(text, "External IPv4: 203.0.113.7 (via http://up.example)") {
		t.Errorf("output missing address line:\n%s", text)
	}
}

func TestExternalChecker_RunFailure(t *testing.T) {
	g := newGetter(t, map[string]string{
		"http://a.example": "",
		"http://b.example": "",
	})
	out := output.NewBufferedOutput()

	report, err := NewExternalChecker().Run(context.Background(), g, out)
	if err == nil {
		t.Fatal("Run() should fail when every endpoint fails")
	}
	if report == nil || report.IP != "" {
		t.Errorf("report = %+v, want empty IP", report)
	}

	hasError := false
	for _, line := range out.Lines() {
		if line.Level == output.LevelError {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected an error line, got:\n%s", out.String())
	}
}
