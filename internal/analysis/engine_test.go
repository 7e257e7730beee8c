package analysis

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/AthlasSoftware/leadmagnet/internal/page"
)

const enginePage = `<!DOCTYPE html>
<html lang="sv">
<head>
  <title>Bygg och renovering i Göteborg sedan 1995</title>
  <meta name="description" content="Vi hjälper dig med allt inom bygg och renovering i Göteborg, från badrum till totalentreprenad, med fast pris och garanti.">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="canonical" href="https://example.se/">
  <link rel="icon" href="/favicon.ico">
  <meta property="og:title" content="Bygg och renovering">
</head>
<body>
  <nav><a href="/tjanster">Tjänster</a></nav>
  <main>
    <h1>Bygg och renovering</h1>
    <img src="/projekt.jpg" alt="Ett avslutat projekt" width="800" height="500">
    <a class="btn" href="/offert">Begär offert</a>
  </main>
  <footer>Kontakt</footer>
</body>
</html>`

type stubFetcher struct {
	doc *page.Document
	err error
}

func (f *stubFetcher) Fetch(ctx context.Context, rawURL string) (*page.Document, error) {
	return f.doc, f.err
}

type stubProbe struct {
	mu        sync.Mutex
	exists    map[string]bool
	requested []string
}

func (p *stubProbe) Exists(ctx context.Context, rawURL string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requested = append(p.requested, rawURL)
	return p.exists[rawURL]
}

type stubAudit struct {
	mu       sync.Mutex
	signal   *AuditSignal
	calls    int
	lastURL  string
	strategy string
}

func (a *stubAudit) Fetch(ctx context.Context, rawURL, strategy string) *AuditSignal {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.lastURL = rawURL
	a.strategy = strategy
	return a.signal
}

func TestEngineAnalyzeFullPipeline(t *testing.T) {
	doc := docFromHTML(t, "https://example.se", enginePage, 1100)
	probe := &stubProbe{exists: map[string]bool{
		"https://example.se/robots.txt":  true,
		"https://example.se/sitemap.xml": true,
	}}
	audit := &stubAudit{signal: &AuditSignal{LCPSeconds: 5.0}}
	engine := NewEngine(&stubFetcher{doc: doc}, probe, audit, testMsgs)

	res, err := engine.Analyze(context.Background(), "https://example.se", Options{Locale: "sv"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if audit.calls != 1 || audit.strategy != StrategyMobile {
		t.Errorf("audit calls = %d strategy = %q, want one mobile call", audit.calls, audit.strategy)
	}

	// The clean page loses only the LCP audit penalty on SEO.
	if res.Accessibility.Score != 100 {
		t.Errorf("Accessibility.Score = %d, issues %v", res.Accessibility.Score, issueMessages(res.Accessibility.Issues))
	}
	if res.SEO.Score != 90 {
		t.Errorf("SEO.Score = %d, issues %v", res.SEO.Score, issueMessages(res.SEO.Issues))
	}
	if res.Design.Score != 100 {
		t.Errorf("Design.Score = %d, issues %v", res.Design.Score, issueMessages(res.Design.Issues))
	}
	if res.Overview.OverallScore != 97 {
		t.Errorf("OverallScore = %d, want 97", res.Overview.OverallScore)
	}
	if !strings.Contains(res.Overview.Summary, "97") {
		t.Errorf("Summary = %q, want the overall score", res.Overview.Summary)
	}
	if len(res.SEO.Issues) != 1 || !strings.Contains(res.SEO.Issues[0].Message, "Largest Contentful Paint") {
		t.Errorf("SEO.Issues = %v, want only the LCP finding", issueMessages(res.SEO.Issues))
	}
	if got := res.SEO.Metrics["load_speed_seconds"]; got != 5.0 {
		t.Errorf("load_speed_seconds = %v, want the audit LCP", got)
	}
}

func TestEngineProbesOriginResources(t *testing.T) {
	doc := docFromHTML(t, "https://example.se/om-oss/personal", enginePage, 900)
	probe := &stubProbe{exists: map[string]bool{}}
	engine := NewEngine(&stubFetcher{doc: doc}, probe, nil, testMsgs)

	if _, err := engine.Analyze(context.Background(), "https://example.se/om-oss/personal", Options{}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	sort.Strings(probe.requested)
	want := []string{
		"https://example.se/robots.txt",
		"https://example.se/sitemap.xml",
		"https://example.se/sitemap_index.xml",
	}
	if !reflect.DeepEqual(probe.requested, want) {
		t.Errorf("requested = %v, want %v", probe.requested, want)
	}
}

func TestEngineSitemapIndexFallback(t *testing.T) {
	doc := docFromHTML(t, "https://example.se", enginePage, 900)
	probe := &stubProbe{exists: map[string]bool{
		"https://example.se/robots.txt":        true,
		"https://example.se/sitemap_index.xml": true,
	}}
	engine := NewEngine(&stubFetcher{doc: doc}, probe, nil, testMsgs)

	res, err := engine.Analyze(context.Background(), "https://example.se", Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := res.SEO.Metrics["has_sitemap"]; got != true {
		t.Errorf("has_sitemap = %v, want true via the index fallback", got)
	}
}

func TestEngineFetchErrorIsFatal(t *testing.T) {
	fetchErr := errors.New("boom")
	engine := NewEngine(&stubFetcher{err: fetchErr}, &stubProbe{}, nil, testMsgs)

	_, err := engine.Analyze(context.Background(), "https://example.se", Options{})
	if !errors.Is(err, fetchErr) {
		t.Errorf("err = %v, want wrapped fetch error", err)
	}
}

func TestEngineNilAuditSignalDegradesToLocal(t *testing.T) {
	doc := docFromHTML(t, "https://example.se", enginePage, 900)
	audit := &stubAudit{signal: nil}
	engine := NewEngine(&stubFetcher{doc: doc}, &stubProbe{exists: map[string]bool{
		"https://example.se/robots.txt":  true,
		"https://example.se/sitemap.xml": true,
	}}, audit, testMsgs)

	res, err := engine.Analyze(context.Background(), "https://example.se", Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if audit.calls != 1 {
		t.Errorf("audit.calls = %d, want 1", audit.calls)
	}
	if res.SEO.Score != 100 {
		t.Errorf("SEO.Score = %d, want unaffected local score", res.SEO.Score)
	}
}

func TestEngineLocalOnlySkipsAudit(t *testing.T) {
	doc := docFromHTML(t, "https://example.se", enginePage, 900)
	audit := &stubAudit{signal: &AuditSignal{LCPSeconds: 9.0}}
	engine := NewEngine(&stubFetcher{doc: doc}, &stubProbe{exists: map[string]bool{}}, audit, testMsgs)

	if _, err := engine.Analyze(context.Background(), "https://example.se", Options{LocalOnly: true}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if audit.calls != 0 {
		t.Errorf("audit.calls = %d, want 0 in local-only mode", audit.calls)
	}
}

func TestEngineDeterministicForSameInputs(t *testing.T) {
	doc := docFromHTML(t, "https://example.se", enginePage, 1100)
	exists := map[string]bool{
		"https://example.se/robots.txt":  true,
		"https://example.se/sitemap.xml": true,
	}
	audit := &stubAudit{signal: &AuditSignal{LCPSeconds: 3.1, CLS: 0.3}}

	run := func() *AnalysisResult {
		engine := NewEngine(&stubFetcher{doc: doc}, &stubProbe{exists: exists}, audit, testMsgs)
		res, err := engine.Analyze(context.Background(), "https://example.se", Options{Locale: "sv"})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		return res
	}

	first := run()
	for i := 0; i < 5; i++ {
		if next := run(); !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d differs:\nfirst %+v\nnext  %+v", i, first, next)
		}
	}
}
