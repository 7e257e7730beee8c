package analysis

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/metrics"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/telemetry"
)

// StrategyMobile is the device strategy requested from the audit provider.
const StrategyMobile = "mobile"

// Fetcher downloads and parses the target page. A fetch failure is fatal to
// the analysis.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*page.Document, error)
}

// Probe answers existence checks for auxiliary resources; failures degrade
// to "absent".
type Probe interface {
	Exists(ctx context.Context, rawURL string) bool
}

// AuditProvider fetches the external audit signal. A nil return means no
// signal is available; the engine proceeds with local-only scores.
type AuditProvider interface {
	Fetch(ctx context.Context, rawURL, strategy string) *AuditSignal
}

// Options tunes a single analysis invocation. The zero value requests deep
// analysis in English.
type Options struct {
	// Locale selects the message catalog language.
	Locale string
	// LocalOnly skips the external audit provider.
	LocalOnly bool
}

// Engine runs the full analysis pipeline. It is stateless across calls:
// every invocation is a pure function of its inputs plus the external calls.
type Engine struct {
	fetcher Fetcher
	probe   Probe
	audit   AuditProvider
	msgs    *i18n.Catalog
}

// NewEngine wires the engine's collaborators. audit may be nil to disable
// external corroboration entirely.
func NewEngine(fetcher Fetcher, probe Probe, audit AuditProvider, msgs *i18n.Catalog) *Engine {
	return &Engine{fetcher: fetcher, probe: probe, audit: audit, msgs: msgs}
}

// Analyze fetches rawURL once and scores it. Only the document fetch can
// fail the call; probe and audit failures degrade to local-only results.
func (e *Engine) Analyze(ctx context.Context, rawURL string, opts Options) (*AnalysisResult, error) {
	locale := i18n.NormalizeLocale(opts.Locale)

	doc, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", rawURL, err)
	}

	res := &AnalysisResult{}

	// The three analyzers are read-only over the document and write to
	// distinct result fields, so they run in parallel.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		res.Accessibility = AnalyzeAccessibility(doc, e.msgs, locale)
	}()
	go func() {
		defer wg.Done()
		res.SEO = AnalyzeSEO(doc, e.runProbes(ctx, doc.URL()), e.msgs, locale)
	}()
	go func() {
		defer wg.Done()
		res.Design = AnalyzeDesign(doc, doc.ElapsedMillis, e.msgs, locale)
	}()
	wg.Wait()

	if !opts.LocalOnly && e.audit != nil {
		signal := e.audit.Fetch(ctx, doc.URL().String(), StrategyMobile)
		if signal != nil {
			BlendAudit(res, signal, e.msgs, locale)
		} else {
			metrics.IncAuditUnavailable()
			telemetry.Info("analysis.audit_unavailable", map[string]any{"url": doc.URL().String()})
		}
	}

	res.Overview = BuildOverview(res, e.msgs, locale)
	return res, nil
}

// runProbes checks robots.txt and the sitemap concurrently. The sitemap
// probe falls back to sitemap_index.xml before giving up.
func (e *Engine) runProbes(ctx context.Context, target *url.URL) ProbeResults {
	origin := &url.URL{Scheme: target.Scheme, Host: target.Host}

	var probes ProbeResults
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		probes.RobotsTxt = e.probe.Exists(ctx, origin.JoinPath("robots.txt").String())
	}()
	go func() {
		defer wg.Done()
		probes.Sitemap = e.probe.Exists(ctx, origin.JoinPath("sitemap.xml").String()) ||
			e.probe.Exists(ctx, origin.JoinPath("sitemap_index.xml").String())
	}()
	wg.Wait()

	return probes
}
