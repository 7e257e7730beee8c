package analysis

import (
	"sort"
	"strings"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
)

// categoryID identifies a quality dimension in ranking and quick-win tables.
type categoryID string

const (
	categoryAccessibility categoryID = "accessibility"
	categorySEO           categoryID = "seo"
	categoryDesign        categoryID = "design"
)

const maxPriorityIssues = 6

// Base priority per severity.
var severityPriority = map[Severity]int{
	SeverityError:   10,
	SeverityWarning: 5,
	SeverityInfo:    2,
}

// priorityKeyword boosts an issue whose message contains one of the terms.
// The table is scanned in order and the first matching entry wins; boosts
// never accumulate. Terms cover both supported locales.
type priorityKeyword struct {
	terms []string
	boost int
}

var priorityKeywords = []priorityKeyword{
	{terms: []string{"https"}, boost: 20},
	{terms: []string{"viewport"}, boost: 18},
	{terms: []string{"title", "titel"}, boost: 17},
	{terms: []string{"h1"}, boost: 16},
	{terms: []string{"meta description"}, boost: 15},
	{terms: []string{"alt"}, boost: 14},
	{terms: []string{"label", "etikett"}, boost: 14},
	{terms: []string{"lang"}, boost: 13},
	{terms: []string{"sitemap"}, boost: 12},
	{terms: []string{"robots"}, boost: 11},
	{terms: []string{"navigation", "navigering"}, boost: 10},
	{terms: []string{"load", "laddning"}, boost: 15},
	{terms: []string{"performance", "prestanda"}, boost: 14},
	{terms: []string{"mobile", "mobil"}, boost: 13},
}

type rankedIssue struct {
	category categoryID
	issue    Issue
	priority int
}

// RankPriorityIssues merges all issues across the three categories and
// returns the top entries by weighted priority, formatted with their
// localized category label. Equal priorities preserve collection order:
// accessibility first, then SEO, then design, each in check order.
func RankPriorityIssues(res *AnalysisResult, msgs *i18n.Catalog, locale string) []string {
	ranked := make([]rankedIssue, 0,
		len(res.Accessibility.Issues)+len(res.SEO.Issues)+len(res.Design.Issues))

	collect := func(cat categoryID, issues []Issue) {
		for _, issue := range issues {
			ranked = append(ranked, rankedIssue{
				category: cat,
				issue:    issue,
				priority: issuePriority(issue),
			})
		}
	}
	collect(categoryAccessibility, res.Accessibility.Issues)
	collect(categorySEO, res.SEO.Issues)
	collect(categoryDesign, res.Design.Issues)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority > ranked[j].priority
	})

	if len(ranked) > maxPriorityIssues {
		ranked = ranked[:maxPriorityIssues]
	}

	out := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		label := msgs.Get("category."+string(entry.category), locale, nil)
		out = append(out, label+": "+entry.issue.Message)
	}
	return out
}

func issuePriority(issue Issue) int {
	priority := severityPriority[issue.Severity]
	lower := strings.ToLower(issue.Message)
	for _, entry := range priorityKeywords {
		for _, term := range entry.terms {
			if strings.Contains(lower, term) {
				return priority + entry.boost
			}
		}
	}
	return priority
}
