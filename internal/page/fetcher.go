package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultUserAgent    = "leadmagnet-analyzer/1.0 (+https://athlas.se)"
	maxBodyBytes        = 5 << 20 // 5MB of HTML is plenty for analysis
)

var (
	// ErrInvalidURL marks a target URL the fetcher refuses to touch.
	ErrInvalidURL = errors.New("invalid url")
	// ErrFetchFailed marks an unreachable or error-responding target.
	ErrFetchFailed = errors.New("fetch failed")
)

// Fetcher downloads and parses a webpage, measuring the load latency.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher builds a Fetcher with the given timeout (zero means default).
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// Fetch downloads rawURL and returns the parsed document. A failure here is
// fatal to the enclosing analysis: without a document there is nothing to score.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	target, err := ParseTargetURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 399 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	limited := http.MaxBytesReader(nil, resp.Body, maxBodyBytes)
	// Small-business sites still serve ISO-8859-1 now and then; normalize to
	// UTF-8 before parsing so text checks see the real characters.
	body, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: charset: %v", ErrFetchFailed, err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrFetchFailed, err)
	}

	final := target
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL
	}
	return NewDocument(final, doc, resp.Header, elapsed), nil
}

// ParseTargetURL validates a user-submitted URL, defaulting a missing scheme
// to https.
func ParseTargetURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		u, err = url.Parse("https://" + rawURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return u, nil
}
