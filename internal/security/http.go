package security

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"time"
)

// ClientConfig holds configuration for the outbound HTTP client used to query
// IP echo endpoints.
type ClientConfig struct {
	Timeout     time.Duration // Upper bound for a whole request, body included
	DialTimeout time.Duration
	// Per-phase bounds; zero means the phase is bounded only by Timeout and
	// the request context.
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	MaxResponseSize       int64  // Maximum response body size in bytes
	MinTLSVersion         uint16 // Minimum TLS version (default: TLS 1.2)
	IPv4Only              bool   // Dial tcp4 so the echoed address is the IPv4 one
}

// DefaultClientConfig returns the configuration used for echo endpoints.
// Endpoints reply with a few bytes, so the body limit is small.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:               30 * time.Second,
		DialTimeout:           10 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		MaxResponseSize:       64 * 1024,
		MinTLSVersion:         tls.VersionTLS12,
		IPv4Only:              true,
	}
}

// NewHTTPClient creates an HTTP client for third-party echo endpoints.
func NewHTTPClient(config ClientConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout:   config.DialTimeout,
		KeepAlive: 15 * time.Second,
	}

	minTLS := config.MinTLSVersion
	if minTLS == 0 {
		minTLS = tls.VersionTLS12
	}

	return &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				if config.IPv4Only {
					network = "tcp4"
				}
				return dialer.DialContext(ctx, network, addr)
			},
			TLSClientConfig: &tls.Config{
				MinVersion: minTLS,
			},
			TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
			ResponseHeaderTimeout: config.ResponseHeaderTimeout,
			ExpectContinueTimeout: 1 * time.Second,
			// Every endpoint is queried once per run; idle connections are not reused.
			DisableKeepAlives: true,
			MaxIdleConns:      1,
			IdleConnTimeout:   5 * time.Second,
		},
	}
}

// LimitedReadAll reads response body with size limit and closes it
func LimitedReadAll(body io.ReadCloser, maxSize int64) ([]byte, error) {
	defer body.Close()
	if maxSize <= 0 {
		maxSize = DefaultClientConfig().MaxResponseSize
	}
	return io.ReadAll(io.LimitReader(body, maxSize))
}
