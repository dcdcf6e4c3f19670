package transport

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/net/proxy"
)

// maxRedirects bounds redirect chains from either endpoint.
const maxRedirects = 10

// Client owns the transport configuration and hands out *http.Client values.
type Client struct {
	// timeout is applied to every request made through the client.
	timeout time.Duration

	// proxyAddress is an optional SOCKS5 proxy in "host:port" format.
	proxyAddress string

	// dialer is the SOCKS5 dialer, nil when no proxy is configured.
	dialer proxy.Dialer

	// headers are injected into every request.
	headers map[string]string

	// userAgent is sent with every request when non-empty.
	userAgent string

	// maxConnsPerHost sizes the idle pool; it should match the worker count.
	maxConnsPerHost int
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithProxy routes all connections through a SOCKS5 proxy.
// An empty address disables proxying.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// WithHeaders adds headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithMaxConnsPerHost sets how many idle connections are kept per host.
func WithMaxConnsPerHost(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxConnsPerHost = n
		}
	}
}

// NewClient creates a Client. It validates the proxy address but does not
// contact the proxy.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		timeout:         60 * time.Second,
		headers:         make(map[string]string),
		maxConnsPerHost: 5,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.proxyAddress != "" {
		if !isValidProxyAddress(c.proxyAddress) {
			return nil, ErrInvalidProxyAddress
		}
		// No SOCKS5 authentication is offered.
		dialer, err := proxy.SOCKS5("tcp", c.proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		c.dialer = dialer
	}

	return c, nil
}

// isValidProxyAddress checks if the address is in valid "host:port" format.
func isValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return portNum >= 1 && portNum <= 65535
}

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// ProxyAddress returns the configured proxy address, or "" if none.
func (c *Client) ProxyAddress() string {
	return c.proxyAddress
}

// HTTPClient returns a new *http.Client using the configured transport.
func (c *Client) HTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        c.maxConnsPerHost * 2,
		MaxIdleConnsPerHost: c.maxConnsPerHost,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	if c.dialer != nil {
		transport.Proxy = nil
		transport.DialContext = c.dialContext
	}

	var rt http.RoundTripper = transport
	if len(c.headers) > 0 || c.userAgent != "" {
		rt = &headerInjectingTransport{
			base:      transport,
			headers:   c.headers,
			userAgent: c.userAgent,
		}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   c.timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// dialContext dials through the SOCKS5 proxy, honoring ctx when the dialer
// supports it.
func (c *Client) dialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if cd, ok := c.dialer.(proxy.ContextDialer); ok {
		return cd.DialContext(ctx, network, address)
	}

	type dialResult struct {
		conn net.Conn
		err  error
	}
	resultCh := make(chan dialResult, 1)
	go func() {
		conn, err := c.dialer.Dial(network, address)
		resultCh <- dialResult{conn, err}
	}()

	select {
	case result := <-resultCh:
		return result.conn, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// headerInjectingTransport wraps an http.RoundTripper to inject
// configured headers into every request.
type headerInjectingTransport struct {
	base      http.RoundTripper
	headers   map[string]string
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *headerInjectingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if t.userAgent != "" && clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	for key, value := range t.headers {
		clone.Header.Set(key, value)
	}

	return t.base.RoundTrip(clone)
}
