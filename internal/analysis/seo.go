package analysis

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
)

// Recommended on-page text lengths, in characters.
const (
	titleMinLength    = 30
	titleMaxLength    = 60
	metaDescMinLength = 70
	metaDescMaxLength = 160
)

// ProbeResults carries the outcome of the two auxiliary network probes. A
// probe that errored or timed out reports false, which the catalog treats as
// "resource absent".
type ProbeResults struct {
	RobotsTxt bool
	Sitemap   bool
}

type seoCheck struct {
	name string
	run  func(doc *page.Document, probes ProbeResults, r *categoryRun)
}

var seoChecks = []seoCheck{
	{name: "title", run: checkTitle},
	{name: "meta_description", run: checkMetaDescription},
	{name: "heading_structure", run: checkSEOHeadings},
	{name: "viewport", run: checkSEOViewport},
	{name: "https", run: checkHTTPS},
	{name: "image_alt_text", run: checkSEOImageAlt},
	{name: "robots_txt", run: checkRobotsTxt},
	{name: "sitemap", run: checkSitemap},
	{name: "canonical", run: checkCanonical},
	{name: "open_graph", run: checkOpenGraph},
}

// AnalyzeSEO evaluates the SEO catalog against the document and the two
// probe results.
func AnalyzeSEO(doc *page.Document, probes ProbeResults, msgs *i18n.Catalog, locale string) CategoryResult {
	r := newCategoryRun(msgs, locale)
	r.metric("load_speed_seconds", float64(doc.ElapsedMillis)/1000.0)
	for _, check := range seoChecks {
		check.run(doc, probes, r)
	}
	return r.finish()
}

func checkTitle(doc *page.Document, _ ProbeResults, r *categoryRun) {
	title := doc.Title()
	length := utf8.RuneCountInString(title)
	r.metric("title", title)
	r.metric("title_length", length)

	if title == "" {
		r.deduct(20)
		r.issue(SeverityError, "seo.title_missing", nil)
		return
	}
	if length < titleMinLength || length > titleMaxLength {
		r.deduct(5)
		r.issue(SeverityWarning, "seo.title_length", i18n.Params{"length": strconv.Itoa(length)})
	}
}

func checkMetaDescription(doc *page.Document, _ ProbeResults, r *categoryRun) {
	desc := doc.MetaContent("description")
	length := utf8.RuneCountInString(desc)
	r.metric("meta_description_length", length)

	if desc == "" {
		r.deduct(12)
		r.issue(SeverityWarning, "seo.meta_desc_missing", nil)
		return
	}
	if length < metaDescMinLength || length > metaDescMaxLength {
		r.deduct(4)
		r.issue(SeverityInfo, "seo.meta_desc_length", i18n.Params{"length": strconv.Itoa(length)})
	}
}

func checkSEOHeadings(doc *page.Document, _ ProbeResults, r *categoryRun) {
	h1Count := doc.Count("h1")
	r.metric("h1_count", h1Count)

	switch {
	case h1Count == 0:
		r.deduct(15)
		r.issue(SeverityError, "seo.h1_missing", nil)
	case h1Count > 1:
		r.deduct(5)
		r.issue(SeverityWarning, "seo.h1_multiple", i18n.Params{"count": strconv.Itoa(h1Count)})
	}
}

func checkSEOViewport(doc *page.Document, _ ProbeResults, r *categoryRun) {
	hasViewport := doc.HasViewport()
	r.metric("has_viewport", hasViewport)
	if !hasViewport {
		r.deduct(15)
		r.issue(SeverityError, "seo.viewport_missing", nil)
	}
}

func checkHTTPS(doc *page.Document, _ ProbeResults, r *categoryRun) {
	https := doc.IsHTTPS()
	r.metric("https", https)
	if !https {
		r.deduct(15)
		r.issue(SeverityError, "seo.https_missing", nil)
	}
}

func checkSEOImageAlt(doc *page.Document, _ ProbeResults, r *categoryRun) {
	missing := 0
	doc.Select("img").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.AttrOr("alt", "")) == "" {
			missing++
		}
	})

	r.metric("images_missing_alt", missing)
	if missing > 0 {
		r.deductPer(missing, 3, 15)
		r.issue(SeverityWarning, "seo.img_alt_missing", i18n.Params{"count": strconv.Itoa(missing)})
	}
}

func checkRobotsTxt(_ *page.Document, probes ProbeResults, r *categoryRun) {
	r.metric("has_robots_txt", probes.RobotsTxt)
	if !probes.RobotsTxt {
		r.deduct(5)
		r.issue(SeverityWarning, "seo.robots_missing", nil)
	}
}

func checkSitemap(_ *page.Document, probes ProbeResults, r *categoryRun) {
	r.metric("has_sitemap", probes.Sitemap)
	if !probes.Sitemap {
		r.deduct(5)
		r.issue(SeverityWarning, "seo.sitemap_missing", nil)
	}
}

func checkCanonical(doc *page.Document, _ ProbeResults, r *categoryRun) {
	hasCanonical := doc.Count(`link[rel="canonical"]`) > 0
	r.metric("has_canonical", hasCanonical)
	if !hasCanonical {
		r.deduct(3)
		r.issue(SeverityInfo, "seo.canonical_missing", nil)
	}
}

func checkOpenGraph(doc *page.Document, _ ProbeResults, r *categoryRun) {
	hasOG := doc.MetaProperty("og:title") != "" || doc.MetaProperty("og:description") != ""
	r.metric("has_open_graph", hasOG)
	if !hasOG {
		r.deduct(3)
		r.issue(SeverityInfo, "seo.og_missing", nil)
	}
}
