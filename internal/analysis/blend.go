package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
)

// Blending constants. These mirror the product's original tuning and are kept
// as fixed configuration, not derived values.
const (
	auditAccessibilityLocalWeight = 0.6
	auditAccessibilityAuditWeight = 0.4

	lcpWarnSeconds  = 2.5
	lcpErrorSeconds = 4.0
	tbtLimitMillis  = 600.0
	clsLimit        = 0.25
	speedIndexLimit = 4.0
)

// performanceFlagTerms routes pre-formatted audit flags by first keyword
// match. Order matters; the first matching term decides.
var performanceFlagTerms = []string{"contrast", "layout", "cls", "lcp", "speed", "blocking", "interactive"}

// BlendAudit folds an external audit signal into already-computed category
// results. It runs strictly after the local analyzers since it adjusts their
// scores and appends issues. All adjusted scores pass the final clamp again.
func BlendAudit(res *AnalysisResult, signal *AuditSignal, msgs *i18n.Catalog, locale string) {
	if signal == nil {
		return
	}

	if signal.AccessibilityScore != nil {
		blended := auditAccessibilityLocalWeight*float64(res.Accessibility.Score) +
			auditAccessibilityAuditWeight*(*signal.AccessibilityScore)
		res.Accessibility.Score = int(math.Round(blended))
	}

	if signal.LCPSeconds > lcpWarnSeconds {
		severity := SeverityWarning
		penalty := 5
		if signal.LCPSeconds > lcpErrorSeconds {
			severity = SeverityError
			penalty = 10
		}
		res.SEO.Score -= penalty
		res.SEO.Issues = append(res.SEO.Issues, auditIssue(msgs, locale, severity, "audit.lcp_slow",
			i18n.Params{"seconds": fmt.Sprintf("%.1f", signal.LCPSeconds)}))

		if local, ok := res.SEO.Metrics["load_speed_seconds"].(float64); !ok || signal.LCPSeconds > local {
			res.SEO.Metrics["load_speed_seconds"] = signal.LCPSeconds
		}
	}

	if signal.TBTMillis > tbtLimitMillis {
		res.SEO.Score -= 10
		res.SEO.Issues = append(res.SEO.Issues, auditIssue(msgs, locale, SeverityWarning, "audit.tbt_high",
			i18n.Params{"ms": fmt.Sprintf("%.0f", signal.TBTMillis)}))
	}

	if signal.CLS > clsLimit {
		res.Design.Score -= 10
		res.Design.Issues = append(res.Design.Issues, auditIssue(msgs, locale, SeverityWarning, "audit.cls_high",
			i18n.Params{"value": fmt.Sprintf("%.3f", signal.CLS)}))
	}

	if signal.SpeedIndexSeconds > speedIndexLimit {
		res.Design.Issues = append(res.Design.Issues, auditIssue(msgs, locale, SeverityInfo, "audit.speed_index",
			i18n.Params{"seconds": fmt.Sprintf("%.1f", signal.SpeedIndexSeconds)}))
	}

	if signal.MobileFriendly != nil && !*signal.MobileFriendly {
		res.SEO.Issues = append(res.SEO.Issues, auditIssue(msgs, locale, SeverityError, "audit.mobile_unfriendly", nil))
	}

	for _, flag := range signal.Flags {
		issue := Issue{Severity: flag.Severity, Message: flag.Message, Recommendation: flag.Recommendation}
		switch routeAuditFlag(flag.Message) {
		case categoryDesign:
			res.Design.Issues = append(res.Design.Issues, issue)
		case categorySEO:
			res.SEO.Issues = append(res.SEO.Issues, issue)
		default:
			res.Accessibility.Issues = append(res.Accessibility.Issues, issue)
		}
	}

	res.Accessibility.Score = clampScore(res.Accessibility.Score)
	res.SEO.Score = clampScore(res.SEO.Score)
	res.Design.Score = clampScore(res.Design.Score)
}

// routeAuditFlag assigns a flag to exactly one category. Performance-flavored
// flags land in SEO, except layout-shift ones which belong to design; all
// other flags are treated as accessibility findings.
func routeAuditFlag(message string) categoryID {
	lower := strings.ToLower(message)
	for _, term := range performanceFlagTerms {
		if strings.Contains(lower, term) {
			if strings.Contains(lower, "cls") {
				return categoryDesign
			}
			return categorySEO
		}
	}
	return categoryAccessibility
}

func auditIssue(msgs *i18n.Catalog, locale string, sev Severity, templateID string, params i18n.Params) Issue {
	return Issue{
		Severity:       sev,
		Message:        msgs.Get(templateID+".msg", locale, params),
		Recommendation: msgs.Get(templateID+".rec", locale, params),
	}
}
