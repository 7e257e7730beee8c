package analysis

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
)

var testMsgs = i18n.NewCatalog()

func docFromHTML(t *testing.T, rawURL, html string, elapsedMillis int64) *page.Document {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse url %q: %v", rawURL, err)
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return page.NewDocument(u, gq, nil, elapsedMillis)
}

func issueMessages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Message)
	}
	return out
}

func containsSubstring(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
