package analysis

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
)

// accessibilityCheck is one entry in the fixed, ordered accessibility catalog.
type accessibilityCheck struct {
	name string
	run  func(doc *page.Document, r *categoryRun)
}

// The catalog is evaluated in order; checks are independent of each other.
var accessibilityChecks = []accessibilityCheck{
	{name: "image_alt_text", run: checkImageAltText},
	{name: "document_language", run: checkDocumentLanguage},
	{name: "heading_structure", run: checkA11yHeadings},
	{name: "form_labels", run: checkFormLabels},
	{name: "accessible_names", run: checkAccessibleNames},
	{name: "generic_link_text", run: checkGenericLinkText},
	{name: "main_landmark", run: checkMainLandmark},
}

// AnalyzeAccessibility evaluates the accessibility catalog against the
// document. The result is a pure function of the document and locale.
func AnalyzeAccessibility(doc *page.Document, msgs *i18n.Catalog, locale string) CategoryResult {
	r := newCategoryRun(msgs, locale)
	for _, check := range accessibilityChecks {
		check.run(doc, r)
	}
	return r.finish()
}

func checkImageAltText(doc *page.Document, r *categoryRun) {
	images := doc.Select("img")
	total := images.Length()

	missing := 0
	firstRef := ""
	images.Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.AttrOr("alt", "")) == "" {
			missing++
			if firstRef == "" {
				firstRef = s.AttrOr("src", "")
			}
		}
	})

	r.metric("images_total", total)
	r.metric("images_missing_alt", missing)

	if missing > 0 {
		r.deductPer(missing, 5, 30)
		r.issueRef(SeverityError, "a11y.img_alt_missing", i18n.Params{
			"count": strconv.Itoa(missing),
			"total": strconv.Itoa(total),
		}, firstRef)
		return
	}
	if total > 0 {
		r.strength("a11y.img_alt_all", i18n.Params{"total": strconv.Itoa(total)})
	}
}

func checkDocumentLanguage(doc *page.Document, r *categoryRun) {
	lang := doc.Lang()
	r.metric("lang", lang)
	if lang == "" {
		r.deduct(8)
		r.issue(SeverityWarning, "a11y.lang_missing", nil)
	}
}

func checkA11yHeadings(doc *page.Document, r *categoryRun) {
	h1Count := doc.Count("h1")
	r.metric("h1_count", h1Count)

	switch {
	case h1Count == 0:
		r.deduct(15)
		r.issue(SeverityError, "a11y.h1_missing", nil)
	case h1Count > 1:
		r.deduct(5)
		r.issue(SeverityWarning, "a11y.h1_multiple", i18n.Params{"count": strconv.Itoa(h1Count)})
	default:
		r.strength("a11y.h1_single", nil)
	}
}

// labelableInputs matches form controls that need an accessible label.
const labelableInputs = `input[type="text"], input[type="email"], input[type="tel"], input[type="number"], input[type="password"], input[type="search"], input[type="url"], input:not([type]), textarea, select`

func checkFormLabels(doc *page.Document, r *categoryRun) {
	labeledFor := make(map[string]bool)
	doc.Select("label[for]").Each(func(_ int, s *goquery.Selection) {
		if id := strings.TrimSpace(s.AttrOr("for", "")); id != "" {
			labeledFor[id] = true
		}
	})

	unlabeled := 0
	firstRef := ""
	doc.Select(labelableInputs).Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.AttrOr("aria-label", "")) != "" ||
			strings.TrimSpace(s.AttrOr("aria-labelledby", "")) != "" {
			return
		}
		if id := strings.TrimSpace(s.AttrOr("id", "")); id != "" && labeledFor[id] {
			return
		}
		if s.ParentsFiltered("label").Length() > 0 {
			return
		}
		unlabeled++
		if firstRef == "" {
			firstRef = s.AttrOr("name", s.AttrOr("id", ""))
		}
	})

	r.metric("inputs_unlabeled", unlabeled)
	if unlabeled > 0 {
		r.deductPer(unlabeled, 4, 20)
		r.issueRef(SeverityError, "a11y.inputs_unlabeled", i18n.Params{"count": strconv.Itoa(unlabeled)}, firstRef)
	}
}

func checkAccessibleNames(doc *page.Document, r *categoryRun) {
	unnamed := 0
	doc.Select("a[href], button").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != "" {
			return
		}
		if strings.TrimSpace(s.AttrOr("aria-label", "")) != "" ||
			strings.TrimSpace(s.AttrOr("title", "")) != "" {
			return
		}
		// An image with alt text names its enclosing link.
		named := false
		s.Find("img").Each(func(_ int, img *goquery.Selection) {
			if strings.TrimSpace(img.AttrOr("alt", "")) != "" {
				named = true
			}
		})
		if !named {
			unnamed++
		}
	})

	r.metric("controls_unnamed", unnamed)
	if unnamed > 0 {
		r.deductPer(unnamed, 3, 15)
		r.issue(SeverityWarning, "a11y.links_empty", i18n.Params{"count": strconv.Itoa(unnamed)})
	}
}

var genericLinkTexts = map[string]bool{
	"click here": true,
	"read more":  true,
	"learn more": true,
	"here":       true,
	"more":       true,
	"klicka här": true,
	"läs mer":    true,
	"mer":        true,
}

func checkGenericLinkText(doc *page.Document, r *categoryRun) {
	generic := 0
	doc.Select("a[href]").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if genericLinkTexts[text] {
			generic++
		}
	})

	r.metric("links_generic_text", generic)
	if generic > 0 {
		r.deductPer(generic, 2, 10)
		r.issue(SeverityInfo, "a11y.links_generic", i18n.Params{"count": strconv.Itoa(generic)})
	}
}

func checkMainLandmark(doc *page.Document, r *categoryRun) {
	hasMain := doc.Count(`main, [role="main"]`) > 0
	r.metric("has_main_landmark", hasMain)
	if hasMain {
		r.strength("a11y.main_present", nil)
		return
	}
	r.deduct(5)
	r.issue(SeverityWarning, "a11y.main_missing", nil)
}
