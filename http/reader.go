// Package http provides a kmlstat.DocumentReader that downloads KML
// documents over HTTP.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/fwojciec/kmlstat"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBytes caps the size of a downloaded document.
const DefaultMaxBytes = 64 << 20

// Ensure Reader implements kmlstat.DocumentReader at compile time.
var _ kmlstat.DocumentReader = (*Reader)(nil)

// Reader retrieves documents from http and https URLs. Any other path is
// passed to the fallback reader.
type Reader struct {
	fallback kmlstat.DocumentReader
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
}

// Option configures a Reader.
type Option func(*Reader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(r *Reader) {
		r.timeout = d
	}
}

// WithMaxBytes sets the largest accepted response body.
func WithMaxBytes(n int64) Option {
	return func(r *Reader) {
		r.maxBytes = n
	}
}

// NewReader creates a new Reader. fallback handles non-URL paths and may
// be nil, in which case such paths are rejected.
func NewReader(fallback kmlstat.DocumentReader, opts ...Option) *Reader {
	r := &Reader{
		fallback: fallback,
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{
		Timeout: r.timeout,
	}

	return r
}

// IsURL reports whether path is an http or https URL.
func IsURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// ReadDocument downloads the document at rawURL, or delegates to the
// fallback reader for local paths.
func (r *Reader) ReadDocument(ctx context.Context, rawURL string) (string, error) {
	if !IsURL(rawURL) {
		if r.fallback == nil {
			return "", kmlstat.Errorf(kmlstat.EINVALID, "%s: not an http or https URL", rawURL)
		}
		return r.fallback.ReadDocument(ctx, rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", kmlstat.Errorf(kmlstat.EINVALID, "invalid URL: %v", err)
	}
	if !strings.EqualFold(path.Ext(u.Path), ".kml") {
		return "", kmlstat.Errorf(kmlstat.EINVALID, "%s: only .kml files are supported", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", kmlstat.Errorf(kmlstat.ENOTFOUND, "%s: not found", rawURL)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	// Read one byte past the limit to detect oversized bodies.
	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > r.maxBytes {
		return "", kmlstat.Errorf(kmlstat.EINVALID, "%s: document exceeds %d bytes", rawURL, r.maxBytes)
	}

	return string(body), nil
}
