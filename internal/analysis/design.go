package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
)

// Load-latency thresholds in milliseconds.
const (
	loadWarnMillis  = 3000
	loadErrorMillis = 5000

	maxDOMElements = 1500
)

type designCheck struct {
	name string
	run  func(doc *page.Document, loadMillis int64, r *categoryRun)
}

var designChecks = []designCheck{
	{name: "viewport", run: checkDesignViewport},
	{name: "load_time", run: checkLoadTime},
	{name: "navigation", run: checkNavigation},
	{name: "call_to_action", run: checkCallToAction},
	{name: "image_dimensions", run: checkImageDimensions},
	{name: "dom_size", run: checkDOMSize},
	{name: "favicon", run: checkFavicon},
	{name: "footer", run: checkFooter},
}

// AnalyzeDesign evaluates the design/UX catalog. The page load latency is
// supplied by the caller, measured during the initial fetch.
func AnalyzeDesign(doc *page.Document, loadMillis int64, msgs *i18n.Catalog, locale string) CategoryResult {
	r := newCategoryRun(msgs, locale)
	for _, check := range designChecks {
		check.run(doc, loadMillis, r)
	}
	return r.finish()
}

func checkDesignViewport(doc *page.Document, _ int64, r *categoryRun) {
	hasViewport := doc.HasViewport()
	r.metric("has_viewport", hasViewport)
	if !hasViewport {
		r.deduct(20)
		r.issue(SeverityError, "design.viewport_missing", nil)
	}
}

// checkLoadTime escalates severity at 3s and 5s; the deduction grows with the
// overage, capped per tier.
func checkLoadTime(_ *page.Document, loadMillis int64, r *categoryRun) {
	r.metric("load_time_ms", loadMillis)
	seconds := fmt.Sprintf("%.1f", float64(loadMillis)/1000.0)

	switch {
	case loadMillis > loadErrorMillis:
		over := int((loadMillis - loadErrorMillis) / 1000)
		points := 15 + 2*over
		if points > 25 {
			points = 25
		}
		r.deduct(points)
		r.issue(SeverityError, "design.load_slow", i18n.Params{"seconds": seconds})
	case loadMillis > loadWarnMillis:
		over := int((loadMillis - loadWarnMillis) / 1000)
		points := 8 + 2*over
		if points > 15 {
			points = 15
		}
		r.deduct(points)
		r.issue(SeverityWarning, "design.load_slow", i18n.Params{"seconds": seconds})
	}
}

func checkNavigation(doc *page.Document, _ int64, r *categoryRun) {
	hasNav := doc.Count(`nav, [role="navigation"]`) > 0
	r.metric("has_navigation", hasNav)
	if !hasNav {
		r.deduct(15)
		r.issue(SeverityError, "design.nav_missing", nil)
	}
}

// ctaSelectors matches the usual primary-action controls.
const ctaSelectors = `button, input[type="submit"], input[type="button"], a[class*="btn"], a[class*="button"], a[class*="cta"], a[href^="mailto:"], a[href^="tel:"]`

func checkCallToAction(doc *page.Document, _ int64, r *categoryRun) {
	hasCTA := doc.Count(ctaSelectors) > 0
	r.metric("has_cta", hasCTA)
	if !hasCTA {
		r.deduct(12)
		r.issue(SeverityWarning, "design.cta_missing", nil)
	}
}

func checkImageDimensions(doc *page.Document, _ int64, r *categoryRun) {
	missing := 0
	doc.Select("img").Each(func(_ int, s *goquery.Selection) {
		_, hasWidth := s.Attr("width")
		_, hasHeight := s.Attr("height")
		if !hasWidth || !hasHeight {
			// Inline sizing also reserves layout space.
			if style := s.AttrOr("style", ""); strings.Contains(style, "width") && strings.Contains(style, "height") {
				return
			}
			missing++
		}
	})

	r.metric("images_missing_dimensions", missing)
	if missing > 0 {
		r.deductPer(missing, 2, 10)
		r.issue(SeverityWarning, "design.img_dimensions", i18n.Params{"count": strconv.Itoa(missing)})
	}
}

func checkDOMSize(doc *page.Document, _ int64, r *categoryRun) {
	elements := doc.ElementCount()
	r.metric("dom_elements", elements)
	if elements > maxDOMElements {
		r.deduct(8)
		r.issue(SeverityWarning, "design.dom_size", i18n.Params{"count": strconv.Itoa(elements)})
	}
}

func checkFavicon(doc *page.Document, _ int64, r *categoryRun) {
	hasFavicon := doc.Count(`link[rel="icon"], link[rel="shortcut icon"], link[rel="apple-touch-icon"]`) > 0
	r.metric("has_favicon", hasFavicon)
	if !hasFavicon {
		r.deduct(3)
		r.issue(SeverityInfo, "design.favicon_missing", nil)
	}
}

func checkFooter(doc *page.Document, _ int64, r *categoryRun) {
	hasFooter := doc.Count(`footer, [role="contentinfo"]`) > 0
	r.metric("has_footer", hasFooter)
	if !hasFooter {
		r.deduct(3)
		r.issue(SeverityInfo, "design.footer_missing", nil)
	}
}
