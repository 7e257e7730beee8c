// Package analysis scores a fetched webpage on accessibility, SEO and
// design/UX heuristics, optionally corroborated by an external audit signal.
package analysis

// Severity grades a detected issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single detected defect with remediation text. Issues are
// immutable once created; their order within a category follows
// check-evaluation order.
type Issue struct {
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
	ElementRef     string   `json:"elementRef,omitempty"`
}

// CategoryResult holds one quality dimension's score, findings and metrics.
type CategoryResult struct {
	Score     int            `json:"score"`
	Issues    []Issue        `json:"issues"`
	Strengths []string       `json:"strengths,omitempty"`
	Metrics   map[string]any `json:"technicalMetrics"`
}

// OverviewResult aggregates the three categories for display.
type OverviewResult struct {
	OverallScore   int      `json:"overallScore"`
	Summary        string   `json:"summary"`
	PriorityIssues []string `json:"priorityIssues"`
	QuickWins      []string `json:"quickWins"`
}

// AnalysisResult is the engine's sole output. The caller owns it once
// returned; the engine keeps no state between invocations.
type AnalysisResult struct {
	Accessibility CategoryResult `json:"accessibility"`
	SEO           CategoryResult `json:"seo"`
	Design        CategoryResult `json:"design"`
	Overview      OverviewResult `json:"overview"`
}

// AuditFlag is a pre-formatted finding reported by the external audit.
type AuditFlag struct {
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// AuditSignal carries third-party audit metrics (Core Web Vitals and
// friends). A nil signal means the provider was unavailable; nil pointer
// fields mean the individual metric was absent from the response.
type AuditSignal struct {
	AccessibilityScore *float64    `json:"accessibilityScore,omitempty"`
	LCPSeconds         float64     `json:"lcpSeconds"`
	CLS                float64     `json:"cls"`
	TBTMillis          float64     `json:"tbtMillis"`
	SpeedIndexSeconds  float64     `json:"speedIndexSeconds"`
	MobileFriendly     *bool       `json:"mobileFriendly,omitempty"`
	Flags              []AuditFlag `json:"flags,omitempty"`
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
