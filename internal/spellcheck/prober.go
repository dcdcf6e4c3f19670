package spellcheck

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/nao1215/spelldigest/internal/model"
)

// drainLimit bounds how much of a probe response body is discarded before
// closing, so the connection can be reused.
const drainLimit = 64 * 1024

// Prober performs one lookup and reports the HTTP status code.
// A non-nil error means no usable response was received.
type Prober interface {
	Probe(ctx context.Context, target model.Target) (int, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, target model.Target) (int, error)

// Probe calls f.
func (f ProberFunc) Probe(ctx context.Context, target model.Target) (int, error) {
	return f(ctx, target)
}

// HTTPProber probes targets with an HTTP GET.
type HTTPProber struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPProber creates an HTTPProber. timeout bounds each call; a
// non-positive value relies on the client's own timeout.
func NewHTTPProber(client *http.Client, timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		client:  client,
		timeout: timeout,
	}
}

// Probe issues a GET to target.URL and returns the status code.
func (p *HTTPProber) Probe(ctx context.Context, target model.Target) (int, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))

	return resp.StatusCode, nil
}
