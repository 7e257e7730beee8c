// Package pagespeed calls the Google PageSpeed Insights v5 API and converts
// its Lighthouse payload into an audit signal for the analysis engine.
package pagespeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/AthlasSoftware/leadmagnet/internal/analysis"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/telemetry"
)

const defaultEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// Lighthouse audits whose failure is worth surfacing as a flag.
var flaggedAudits = []struct {
	id       string
	severity analysis.Severity
}{
	{"color-contrast", analysis.SeverityWarning},
	{"tap-targets", analysis.SeverityWarning},
	{"render-blocking-resources", analysis.SeverityInfo},
	{"interactive", analysis.SeverityInfo},
}

// Client fetches audit data from PageSpeed Insights.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint, used in tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a PSI client. apiKey may be empty; Google then applies
// its anonymous quota.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type psiResponse struct {
	LighthouseResult *lighthouseResult `json:"lighthouseResult"`
}

type lighthouseResult struct {
	Categories map[string]psiCategory `json:"categories"`
	Audits     map[string]psiAudit    `json:"audits"`
}

type psiCategory struct {
	Score float64 `json:"score"`
}

type psiAudit struct {
	Score        *float64 `json:"score"`
	NumericValue float64  `json:"numericValue"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
}

// Fetch runs a PSI audit for targetURL. Any failure degrades to a nil
// signal; the engine falls back to local-only scoring.
func (c *Client) Fetch(ctx context.Context, targetURL, strategy string) *analysis.AuditSignal {
	query := url.Values{}
	query.Set("url", targetURL)
	query.Set("strategy", strategy)
	query.Add("category", "performance")
	query.Add("category", "accessibility")
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		telemetry.Warn("pagespeed.request_build_failed", map[string]any{"url": targetURL, "error": err.Error()})
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		telemetry.Warn("pagespeed.request_failed", map[string]any{"url": targetURL, "error": err.Error()})
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		telemetry.Warn("pagespeed.bad_status", map[string]any{"url": targetURL, "status": resp.StatusCode})
		return nil
	}

	var payload psiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		telemetry.Warn("pagespeed.decode_failed", map[string]any{"url": targetURL, "error": err.Error()})
		return nil
	}
	if payload.LighthouseResult == nil {
		telemetry.Warn("pagespeed.empty_result", map[string]any{"url": targetURL})
		return nil
	}

	return signalFrom(payload.LighthouseResult)
}

func signalFrom(lr *lighthouseResult) *analysis.AuditSignal {
	signal := &analysis.AuditSignal{}

	if cat, ok := lr.Categories["accessibility"]; ok {
		score := cat.Score * 100
		signal.AccessibilityScore = &score
	}

	if lcp, ok := lr.Audits["largest-contentful-paint"]; ok {
		signal.LCPSeconds = lcp.NumericValue / 1000
	}
	if cls, ok := lr.Audits["cumulative-layout-shift"]; ok {
		signal.CLS = cls.NumericValue
	}
	if tbt, ok := lr.Audits["total-blocking-time"]; ok {
		signal.TBTMillis = tbt.NumericValue
	}
	if si, ok := lr.Audits["speed-index"]; ok {
		signal.SpeedIndexSeconds = si.NumericValue / 1000
	}

	// Lighthouse's viewport audit is the closest mobile-friendliness proxy.
	if vp, ok := lr.Audits["viewport"]; ok && vp.Score != nil {
		friendly := *vp.Score >= 1
		signal.MobileFriendly = &friendly
	}

	for _, fa := range flaggedAudits {
		audit, ok := lr.Audits[fa.id]
		if !ok || audit.Score == nil || *audit.Score >= 0.9 {
			continue
		}
		if audit.Title == "" {
			continue
		}
		signal.Flags = append(signal.Flags, analysis.AuditFlag{
			Severity:       fa.severity,
			Message:        audit.Title,
			Recommendation: audit.Description,
		})
	}

	return signal
}
