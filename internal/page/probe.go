package page

import (
	"context"
	"io"
	"net/http"
	"time"
)

const probeTimeout = 5 * time.Second

// Probe answers best-effort existence checks for auxiliary resources such as
// robots.txt and sitemap.xml. Any error, timeout or non-2xx status means
// "absent"; a probe never fails the enclosing analysis.
type Probe struct {
	client    *http.Client
	userAgent string
}

// NewProbe builds a Probe with a short fixed timeout.
func NewProbe() *Probe {
	return &Probe{
		client:    &http.Client{Timeout: probeTimeout},
		userAgent: defaultUserAgent,
	}
}

// Exists reports whether the resource at rawURL responds with a 2xx status.
func (p *Probe) Exists(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
