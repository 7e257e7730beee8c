package analysis

import (
	"math"
	"sort"
	"strconv"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
)

// Summary tier thresholds on the overall score.
const (
	tierExcellent = 85
	tierGood      = 70
	tierOK        = 50
)

type scoredArea struct {
	id    categoryID
	score int
}

// BuildOverview computes the overall score, the templated narrative summary
// and the ranked priority-issue and quick-win lists from the (possibly
// blended) category results.
func BuildOverview(res *AnalysisResult, msgs *i18n.Catalog, locale string) OverviewResult {
	overall := int(math.Round(
		(float64(res.Accessibility.Score) + float64(res.SEO.Score) + float64(res.Design.Score)) / 3.0))
	overall = clampScore(overall)

	// Fixed area order breaks ties: accessibility, SEO, design.
	areas := []scoredArea{
		{id: categoryAccessibility, score: res.Accessibility.Score},
		{id: categorySEO, score: res.SEO.Score},
		{id: categoryDesign, score: res.Design.Score},
	}
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].score > areas[j].score
	})
	strongest, weakest := areas[0], areas[len(areas)-1]

	critical := countErrors(res.Accessibility.Issues) +
		countErrors(res.SEO.Issues) +
		countErrors(res.Design.Issues)

	params := i18n.Params{
		"score":          strconv.Itoa(overall),
		"strongest":      msgs.Get("area."+string(strongest.id), locale, nil),
		"strongestScore": strconv.Itoa(strongest.score),
		"weakest":        msgs.Get("area."+string(weakest.id), locale, nil),
		"weakestScore":   strconv.Itoa(weakest.score),
		"critical":       strconv.Itoa(critical),
	}

	return OverviewResult{
		OverallScore:   overall,
		Summary:        msgs.Get(summaryTemplate(overall, weakest.score, critical), locale, params),
		PriorityIssues: RankPriorityIssues(res, msgs, locale),
		QuickWins:      SelectQuickWins(res, msgs, locale),
	}
}

// summaryTemplate picks the narrative tier. Tiers are mutually exclusive and
// evaluated from the top down.
func summaryTemplate(overall, weakestScore, critical int) string {
	switch {
	case overall >= tierExcellent:
		if weakestScore < 75 {
			return "overview.excellent_focus"
		}
		return "overview.excellent"
	case overall >= tierGood:
		if critical > 0 {
			return "overview.good_issues"
		}
		return "overview.good_clean"
	case overall >= tierOK:
		if critical > 3 {
			return "overview.ok_many"
		}
		return "overview.ok"
	default:
		if critical > 5 {
			return "overview.poor_many"
		}
		return "overview.poor"
	}
}

func countErrors(issues []Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}
