package analysis

import (
	"strings"
	"testing"
)

func baseResult(a11y, seo, design int) *AnalysisResult {
	return &AnalysisResult{
		Accessibility: CategoryResult{Score: a11y, Metrics: map[string]any{}},
		SEO:           CategoryResult{Score: seo, Metrics: map[string]any{"load_speed_seconds": 1.2}},
		Design:        CategoryResult{Score: design, Metrics: map[string]any{}},
	}
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestBlendAccessibilityWeightedAverage(t *testing.T) {
	res := baseResult(80, 90, 90)
	BlendAudit(res, &AuditSignal{AccessibilityScore: floatPtr(90)}, testMsgs, "en")

	// 0.6*80 + 0.4*90 = 84.
	if res.Accessibility.Score != 84 {
		t.Errorf("Accessibility.Score = %d, want 84", res.Accessibility.Score)
	}
}

func TestBlendWithoutAccessibilityScoreKeepsLocal(t *testing.T) {
	res := baseResult(80, 90, 90)
	BlendAudit(res, &AuditSignal{}, testMsgs, "en")
	if res.Accessibility.Score != 80 {
		t.Errorf("Accessibility.Score = %d, want unchanged 80", res.Accessibility.Score)
	}
}

func TestBlendSlowLCPEscalatesToError(t *testing.T) {
	res := baseResult(90, 90, 90)
	BlendAudit(res, &AuditSignal{LCPSeconds: 5.0}, testMsgs, "en")

	if res.SEO.Score != 80 {
		t.Errorf("SEO.Score = %d, want 80", res.SEO.Score)
	}
	if len(res.SEO.Issues) != 1 {
		t.Fatalf("SEO.Issues = %v, want one LCP finding", issueMessages(res.SEO.Issues))
	}
	issue := res.SEO.Issues[0]
	if issue.Severity != SeverityError || !strings.Contains(issue.Message, "5.0") {
		t.Errorf("issue = %+v, want an error mentioning 5.0", issue)
	}
	if got := res.SEO.Metrics["load_speed_seconds"]; got != 5.0 {
		t.Errorf("load_speed_seconds = %v, want raised to 5.0", got)
	}
}

func TestBlendModerateLCPIsWarning(t *testing.T) {
	res := baseResult(90, 90, 90)
	BlendAudit(res, &AuditSignal{LCPSeconds: 3.0}, testMsgs, "en")

	if res.SEO.Score != 85 {
		t.Errorf("SEO.Score = %d, want 85", res.SEO.Score)
	}
	if len(res.SEO.Issues) != 1 || res.SEO.Issues[0].Severity != SeverityWarning {
		t.Errorf("SEO.Issues = %+v, want one warning", res.SEO.Issues)
	}
}

func TestBlendLCPDoesNotLowerFasterLocalMetric(t *testing.T) {
	res := baseResult(90, 90, 90)
	res.SEO.Metrics["load_speed_seconds"] = 6.5
	BlendAudit(res, &AuditSignal{LCPSeconds: 3.0}, testMsgs, "en")

	if got := res.SEO.Metrics["load_speed_seconds"]; got != 6.5 {
		t.Errorf("load_speed_seconds = %v, want kept at 6.5", got)
	}
}

func TestBlendTBTAndCLS(t *testing.T) {
	res := baseResult(90, 90, 90)
	BlendAudit(res, &AuditSignal{TBTMillis: 700, CLS: 0.3}, testMsgs, "en")

	if res.SEO.Score != 80 {
		t.Errorf("SEO.Score = %d, want 80 after TBT deduction", res.SEO.Score)
	}
	if res.Design.Score != 80 {
		t.Errorf("Design.Score = %d, want 80 after CLS deduction", res.Design.Score)
	}
	if !containsSubstring(issueMessages(res.SEO.Issues), "Blocking Time") {
		t.Errorf("SEO.Issues = %v, want a TBT finding", issueMessages(res.SEO.Issues))
	}
	if !containsSubstring(issueMessages(res.Design.Issues), "Layout Shift") {
		t.Errorf("Design.Issues = %v, want a CLS finding", issueMessages(res.Design.Issues))
	}
}

func TestBlendSpeedIndexInformsWithoutDeducting(t *testing.T) {
	res := baseResult(90, 90, 90)
	BlendAudit(res, &AuditSignal{SpeedIndexSeconds: 6.0}, testMsgs, "en")

	if res.Design.Score != 90 {
		t.Errorf("Design.Score = %d, want unchanged 90", res.Design.Score)
	}
	if len(res.Design.Issues) != 1 || res.Design.Issues[0].Severity != SeverityInfo {
		t.Errorf("Design.Issues = %+v, want one info finding", res.Design.Issues)
	}
}

func TestBlendMobileUnfriendly(t *testing.T) {
	res := baseResult(90, 90, 90)
	BlendAudit(res, &AuditSignal{MobileFriendly: boolPtr(false)}, testMsgs, "en")

	if res.SEO.Score != 90 {
		t.Errorf("SEO.Score = %d, want unchanged 90", res.SEO.Score)
	}
	if len(res.SEO.Issues) != 1 || res.SEO.Issues[0].Severity != SeverityError {
		t.Errorf("SEO.Issues = %+v, want one mobile error", res.SEO.Issues)
	}
}

func TestBlendFlagRouting(t *testing.T) {
	res := baseResult(90, 90, 90)
	BlendAudit(res, &AuditSignal{Flags: []AuditFlag{
		{Severity: SeverityWarning, Message: "Text has insufficient contrast"},
		{Severity: SeverityWarning, Message: "High CLS from late-loading banners"},
		{Severity: SeverityWarning, Message: "Image elements do not have alt attributes"},
	}}, testMsgs, "en")

	if len(res.SEO.Issues) != 1 || !strings.Contains(res.SEO.Issues[0].Message, "contrast") {
		t.Errorf("SEO.Issues = %v, want the contrast flag", issueMessages(res.SEO.Issues))
	}
	if len(res.Design.Issues) != 1 || !strings.Contains(res.Design.Issues[0].Message, "CLS") {
		t.Errorf("Design.Issues = %v, want the CLS flag", issueMessages(res.Design.Issues))
	}
	if len(res.Accessibility.Issues) != 1 || !strings.Contains(res.Accessibility.Issues[0].Message, "alt") {
		t.Errorf("Accessibility.Issues = %v, want the unmatched flag", issueMessages(res.Accessibility.Issues))
	}
}

func TestBlendClampsAtZero(t *testing.T) {
	res := baseResult(90, 5, 90)
	BlendAudit(res, &AuditSignal{LCPSeconds: 5.0, TBTMillis: 900}, testMsgs, "en")

	if res.SEO.Score != 0 {
		t.Errorf("SEO.Score = %d, want clamped to 0", res.SEO.Score)
	}
}

func TestBlendNilSignalIsNoOp(t *testing.T) {
	res := baseResult(90, 90, 90)
	BlendAudit(res, nil, testMsgs, "en")
	if res.SEO.Score != 90 || len(res.SEO.Issues) != 0 {
		t.Errorf("result changed on nil signal: %+v", res.SEO)
	}
}
