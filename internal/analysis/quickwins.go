package analysis

import (
	"sort"
	"strings"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
)

const maxQuickWins = 7

// quickWin is a candidate remediation. It triggers when any issue in the
// given category contains one of the keywords (and matches the severity
// restriction, when set). Score is impact×2 − effort; a candidate whose
// condition is false is simply excluded, there is no fallback entry.
type quickWin struct {
	actionID string
	category categoryID
	keywords []string
	severity Severity // empty matches any severity
	effort   int      // 1-5, lower is easier
	impact   int      // 1-10
}

var quickWinCatalog = []quickWin{
	{actionID: "quickwin.img_alt", category: categoryAccessibility, keywords: []string{"alt"}, effort: 1, impact: 8},
	{actionID: "quickwin.title", category: categorySEO, keywords: []string{"title", "titel"}, effort: 1, impact: 9},
	{actionID: "quickwin.meta_desc", category: categorySEO, keywords: []string{"meta description"}, effort: 1, impact: 8},
	{actionID: "quickwin.viewport", category: categorySEO, keywords: []string{"viewport"}, severity: SeverityError, effort: 1, impact: 9},
	{actionID: "quickwin.https", category: categorySEO, keywords: []string{"https"}, severity: SeverityError, effort: 3, impact: 10},
	{actionID: "quickwin.h1", category: categorySEO, keywords: []string{"h1"}, effort: 1, impact: 7},
	{actionID: "quickwin.lang", category: categoryAccessibility, keywords: []string{"lang"}, effort: 1, impact: 6},
	{actionID: "quickwin.labels", category: categoryAccessibility, keywords: []string{"label", "etikett"}, effort: 2, impact: 7},
	{actionID: "quickwin.link_text", category: categoryAccessibility, keywords: []string{"generic", "generisk"}, effort: 2, impact: 5},
	{actionID: "quickwin.robots", category: categorySEO, keywords: []string{"robots"}, effort: 1, impact: 4},
	{actionID: "quickwin.sitemap", category: categorySEO, keywords: []string{"sitemap"}, effort: 1, impact: 5},
	{actionID: "quickwin.cta", category: categoryDesign, keywords: []string{"call-to-action"}, effort: 2, impact: 8},
	{actionID: "quickwin.navigation", category: categoryDesign, keywords: []string{"navigation", "navigering"}, effort: 3, impact: 7},
	{actionID: "quickwin.load", category: categoryDesign, keywords: []string{"load", "laddning"}, effort: 4, impact: 9},
	{actionID: "quickwin.img_dimensions", category: categoryDesign, keywords: []string{"width"}, effort: 2, impact: 6},
	{actionID: "quickwin.favicon", category: categoryDesign, keywords: []string{"favicon"}, effort: 1, impact: 3},
}

// SelectQuickWins evaluates the candidate catalog against the issue set and
// returns the localized action texts of the best-scoring matches. Inclusion
// is a pure function of the issue messages.
func SelectQuickWins(res *AnalysisResult, msgs *i18n.Catalog, locale string) []string {
	type scored struct {
		actionID string
		score    int
	}

	matched := make([]scored, 0, len(quickWinCatalog))
	for _, candidate := range quickWinCatalog {
		if candidate.triggers(res) {
			matched = append(matched, scored{
				actionID: candidate.actionID,
				score:    candidate.impact*2 - candidate.effort,
			})
		}
	}

	// Stable keeps catalog order on ties.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	if len(matched) > maxQuickWins {
		matched = matched[:maxQuickWins]
	}

	out := make([]string, 0, len(matched))
	for _, m := range matched {
		out = append(out, msgs.Get(m.actionID, locale, nil))
	}
	return out
}

func (q quickWin) triggers(res *AnalysisResult) bool {
	var issues []Issue
	switch q.category {
	case categoryAccessibility:
		issues = res.Accessibility.Issues
	case categorySEO:
		issues = res.SEO.Issues
	case categoryDesign:
		issues = res.Design.Issues
	}

	for _, issue := range issues {
		if q.severity != "" && issue.Severity != q.severity {
			continue
		}
		lower := strings.ToLower(issue.Message)
		for _, keyword := range q.keywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}
