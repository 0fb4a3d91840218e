package security

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateEndpoint checks that an endpoint URL supplied from outside the
// built-in list is something the fetcher can query:
// 1. It parses as an absolute URL
// 2. The scheme is http or https
// 3. It names a host
//
// Server list files are trusted as-is; this is applied to endpoints that come
// in through tool calls.
func ValidateEndpoint(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL %q: %w", raw, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("endpoint must use http or https, got %q: %s", u.Scheme, raw)
	}

	if u.Hostname() == "" {
		return fmt.Errorf("endpoint has no host: %s", raw)
	}

	if u.User != nil {
		return fmt.Errorf("endpoint must not carry credentials: %s", u.Redacted())
	}

	return nil
}

// ValidateEndpoints validates every endpoint and returns the trimmed list.
func ValidateEndpoints(endpoints []string) ([]string, error) {
	out := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		if err := ValidateEndpoint(e); err != nil {
			return nil, err
		}
		out = append(out, strings.TrimSpace(e))
	}
	return out, nil
}
