// Package transport builds the HTTP client shared by the document fetcher
// and the spell-check prober.
//
// All requests go through one *http.Client so that connection reuse,
// the per-request timeout, optional SOCKS5 proxying (golang.org/x/net/proxy)
// and configured headers apply uniformly to both endpoints.
package transport
