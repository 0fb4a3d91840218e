package extip

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/R167/ipgetter/internal/security"
)

const ipv4Expr = `(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)(\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}`

var (
	ipv4Pattern = regexp.MustCompile(ipv4Expr)
	ipv4Exact   = regexp.MustCompile(`^` + ipv4Expr + `$`)
)

// Outcome is the result of one fetch. It is present when IP is set; otherwise
// Err says why the endpoint gave nothing.
type Outcome struct {
	Endpoint string
	IP       string
	Err      error
}

func (o Outcome) Present() bool {
	return o.IP != ""
}

func failed(endpoint string, err error) Outcome {
	return Outcome{
		Endpoint: endpoint,
		Err:      &AttemptError{Endpoint: endpoint, Err: fmt.Errorf("%w: %w", ErrFetchFailure, err)},
	}
}

// Fetcher performs a single query against one endpoint. Implementations must
// return promptly once ctx is done and must not retry. A Lookup stops waiting
// for a fetcher DefaultAbandonAfter past the attempt deadline.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) Outcome
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, endpoint string) Outcome

func (f FetcherFunc) Fetch(ctx context.Context, endpoint string) Outcome {
	return f(ctx, endpoint)
}

// HTTPFetcher queries endpoints with HTTP GET and extracts the first IPv4
// address found in the response body.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

// NewHTTPFetcher creates a fetcher. A nil client gets the default hardened
// client; an empty userAgent gets DefaultUserAgent.
func NewHTTPFetcher(client *http.Client, userAgent string) *HTTPFetcher {
	cfg := security.DefaultClientConfig()
	if client == nil {
		client = security.NewHTTPClient(cfg)
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{
		client:    client,
		userAgent: userAgent,
		maxBody:   cfg.MaxResponseSize,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, endpoint string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return failed(endpoint, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return failed(endpoint, err)
	}

	// LimitedReadAll closes the body on every path.
	body, err := security.LimitedReadAll(resp.Body, f.maxBody)
	if err != nil {
		return failed(endpoint, err)
	}

	// Status is not checked: some endpoints answer with an error page that
	// still carries the address.
	ip := ExtractIPv4(DecodeBody(body))
	if ip == "" {
		return failed(endpoint, fmt.Errorf("%w (status %d)", ErrNoAddress, resp.StatusCode))
	}
	return Outcome{Endpoint: endpoint, IP: ip}
}

// DecodeBody decodes body as UTF-8, falling back to ISO-8859-1 when it is not
// valid UTF-8. It never fails.
func DecodeBody(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(body)
	if err != nil {
		// Unreachable: ISO-8859-1 maps every byte.
		return string(body)
	}
	return string(decoded)
}

// ExtractIPv4 returns the first dotted-quad IPv4 address in text, or "".
func ExtractIPv4(text string) string {
	return ipv4Pattern.FindString(text)
}

// ValidIPv4 reports whether s is exactly one dotted-quad IPv4 address.
func ValidIPv4(s string) bool {
	return ipv4Exact.MatchString(s)
}
