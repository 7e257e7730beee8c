package analysis

import (
	"testing"
)

func TestQuickWinsSingleAltIssue(t *testing.T) {
	res := &AnalysisResult{
		Accessibility: CategoryResult{Issues: []Issue{
			{Severity: SeverityError, Message: "3 of 5 images are missing alt text"},
		}},
	}
	got := SelectQuickWins(res, testMsgs, "en")
	want := []string{"Add alt text to images that lack it"}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuickWinsOrderByImpactMinusEffort(t *testing.T) {
	res := &AnalysisResult{
		SEO: CategoryResult{Issues: []Issue{
			{Severity: SeverityError, Message: "The page has no title tag"},
			{Severity: SeverityError, Message: "The viewport meta tag is missing"},
			{Severity: SeverityError, Message: "The page is not served over https"},
			{Severity: SeverityWarning, Message: "robots.txt was not found"},
		}},
	}
	got := SelectQuickWins(res, testMsgs, "en")

	// title, viewport and https all score 17 and keep catalog order;
	// robots scores 7 and comes last.
	want := []string{
		"Write a descriptive page title of 30-60 characters",
		"Add a viewport meta tag for mobile scaling",
		"Move the site to https with a TLS certificate",
		"Publish a robots.txt file",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestQuickWinsViewportRequiresErrorSeverity(t *testing.T) {
	res := &AnalysisResult{
		SEO: CategoryResult{Issues: []Issue{
			{Severity: SeverityWarning, Message: "The viewport meta tag is missing"},
		}},
	}
	if got := SelectQuickWins(res, testMsgs, "en"); len(got) != 0 {
		t.Errorf("got %v, want no quick wins for a non-error viewport issue", got)
	}
}

func TestQuickWinsCategoryScoped(t *testing.T) {
	// An alt mention in the SEO category must not trigger the
	// accessibility-scoped candidate; it triggers its own SEO-independent
	// candidates only when the category matches.
	res := &AnalysisResult{
		Design: CategoryResult{Issues: []Issue{
			{Severity: SeverityWarning, Message: "3 images are missing alt text"},
		}},
	}
	if got := SelectQuickWins(res, testMsgs, "en"); len(got) != 0 {
		t.Errorf("got %v, want none for an alt mention outside accessibility", got)
	}
}

func TestQuickWinsCapAtSeven(t *testing.T) {
	res := &AnalysisResult{
		Accessibility: CategoryResult{Issues: []Issue{
			{Severity: SeverityError, Message: "images are missing alt text"},
			{Severity: SeverityWarning, Message: "the html element has no lang attribute"},
			{Severity: SeverityError, Message: "form fields lack a label"},
		}},
		SEO: CategoryResult{Issues: []Issue{
			{Severity: SeverityError, Message: "The page has no title tag"},
			{Severity: SeverityWarning, Message: "The page has no meta description"},
			{Severity: SeverityError, Message: "The viewport meta tag is missing"},
			{Severity: SeverityError, Message: "The page is not served over https"},
			{Severity: SeverityWarning, Message: "robots.txt was not found"},
			{Severity: SeverityWarning, Message: "No XML sitemap was found"},
		}},
		Design: CategoryResult{Issues: []Issue{
			{Severity: SeverityWarning, Message: "No clear call-to-action was found"},
			{Severity: SeverityInfo, Message: "The page has no favicon"},
		}},
	}
	got := SelectQuickWins(res, testMsgs, "en")
	if len(got) != 7 {
		t.Errorf("len = %d, want 7; got %v", len(got), got)
	}
}

func TestQuickWinsSwedishMessagesTrigger(t *testing.T) {
	res := &AnalysisResult{
		SEO: CategoryResult{Issues: []Issue{
			{Severity: SeverityError, Message: "Sidan saknar title-tagg"},
		}},
		Design: CategoryResult{Issues: []Issue{
			{Severity: SeverityError, Message: "Sidans laddningstid är 7.2s"},
		}},
	}
	got := SelectQuickWins(res, testMsgs, "sv")
	want := []string{
		"Skriv en beskrivande sidtitel på 30-60 tecken",
		"Komprimera bilder för att korta laddningstiden",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
