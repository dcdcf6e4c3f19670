package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nao1215/spelldigest/internal/model"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultMaxBodySize is used when no body limit is configured.
const DefaultMaxBodySize = 5 * 1024 * 1024

// Fetcher retrieves a document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*model.Document, error)
}

// HTTPFetcher fetches documents with an HTTP GET.
type HTTPFetcher struct {
	client      *http.Client
	maxBodySize int64
	logger      *slog.Logger
}

// HTTPFetcherOption configures an HTTPFetcher.
type HTTPFetcherOption func(*HTTPFetcher)

// WithMaxBodySize limits how many bytes of the body are read.
// Non-positive values keep the default.
func WithMaxBodySize(size int64) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewHTTPFetcher creates an HTTPFetcher using client.
func NewHTTPFetcher(client *http.Client, opts ...HTTPFetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:      client,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves url and returns its body decoded to UTF-8.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*model.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	f.logger.Debug("fetching document", "url", url)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := decodeBody(io.LimitReader(resp.Body, f.maxBodySize), contentType)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("document fetched",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	return &model.Document{
		URL:         url,
		Body:        body,
		ContentType: contentType,
		Size:        len(body),
		FetchedAt:   time.Now(),
	}, nil
}

// decodeBody reads r and converts it to UTF-8 using the charset parameter
// of contentType. Without a charset the body must already be valid UTF-8.
func decodeBody(r io.Reader, contentType string) (string, error) {
	charset := charsetOf(contentType)
	if charset != "" && !isUTF8Label(charset) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return "", fmt.Errorf("%w: unsupported charset %q", ErrDecode, charset)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: body is not valid UTF-8", ErrDecode)
	}

	// A leading byte order mark would otherwise stick to the first word.
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

// charsetOf extracts the charset parameter from a Content-Type value.
func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(params["charset"]))
}

func isUTF8Label(charset string) bool {
	return charset == "utf-8" || charset == "utf8"
}
