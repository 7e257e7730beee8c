package analysis

import (
	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
)

// categoryRun accumulates one analyzer's pass over its check table. The
// running score starts at 100 and may go below zero while checks evaluate;
// only finish applies the [0,100] clamp.
type categoryRun struct {
	score     int
	issues    []Issue
	strengths []string
	metrics   map[string]any

	msgs   *i18n.Catalog
	locale string
}

func newCategoryRun(msgs *i18n.Catalog, locale string) *categoryRun {
	return &categoryRun{
		score:   100,
		issues:  make([]Issue, 0, 8),
		metrics: make(map[string]any, 8),
		msgs:    msgs,
		locale:  locale,
	}
}

func (r *categoryRun) deduct(points int) {
	r.score -= points
}

// deductPer subtracts perItem points per counted item, capped at limit for
// the check.
func (r *categoryRun) deductPer(count, perItem, limit int) {
	points := count * perItem
	if points > limit {
		points = limit
	}
	r.score -= points
}

// issue appends an issue built from the catalog; templateID resolves the
// message as "<id>.msg" and the recommendation as "<id>.rec".
func (r *categoryRun) issue(sev Severity, templateID string, params i18n.Params) {
	r.issueRef(sev, templateID, params, "")
}

func (r *categoryRun) issueRef(sev Severity, templateID string, params i18n.Params, elementRef string) {
	r.issues = append(r.issues, Issue{
		Severity:       sev,
		Message:        r.msgs.Get(templateID+".msg", r.locale, params),
		Recommendation: r.msgs.Get(templateID+".rec", r.locale, params),
		ElementRef:     elementRef,
	})
}

func (r *categoryRun) strength(templateID string, params i18n.Params) {
	r.strengths = append(r.strengths, r.msgs.Get(templateID+".strength", r.locale, params))
}

func (r *categoryRun) metric(key string, value any) {
	r.metrics[key] = value
}

func (r *categoryRun) finish() CategoryResult {
	return CategoryResult{
		Score:     clampScore(r.score),
		Issues:    r.issues,
		Strengths: r.strengths,
		Metrics:   r.metrics,
	}
}
