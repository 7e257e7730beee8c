package analysis

import (
	"strings"
	"testing"
)

const designCompletePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="icon" href="/favicon.ico">
</head>
<body>
  <nav><a href="/">Home</a></nav>
  <h1>Welcome</h1>
  <img src="/hero.jpg" alt="Hero" width="1200" height="600">
  <button>Book a demo</button>
  <footer>Contact us</footer>
</body>
</html>`

func TestDesignCompletePageScoresFull(t *testing.T) {
	doc := docFromHTML(t, "https://example.com", designCompletePage, 1500)
	res := AnalyzeDesign(doc, 1500, testMsgs, "en")

	if res.Score != 100 {
		t.Errorf("Score = %d, issues %v", res.Score, issueMessages(res.Issues))
	}
	if len(res.Issues) != 0 {
		t.Errorf("Issues = %v, want none", issueMessages(res.Issues))
	}
}

func TestDesignLoadTimeTiers(t *testing.T) {
	tests := []struct {
		name       string
		loadMillis int64
		wantScore  int
		wantSev    Severity
	}{
		{name: "just under warn", loadMillis: 2900, wantScore: 100},
		{name: "warn base", loadMillis: 3500, wantScore: 92, wantSev: SeverityWarning},
		{name: "warn grows per second", loadMillis: 4600, wantScore: 90, wantSev: SeverityWarning},
		{name: "error base", loadMillis: 5500, wantScore: 85, wantSev: SeverityError},
		{name: "error grows per second", loadMillis: 8200, wantScore: 79, wantSev: SeverityError},
		{name: "error capped", loadMillis: 30000, wantScore: 75, wantSev: SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromHTML(t, "https://example.com", designCompletePage, tt.loadMillis)
			res := AnalyzeDesign(doc, tt.loadMillis, testMsgs, "en")
			if res.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", res.Score, tt.wantScore)
			}
			if tt.wantSev == "" {
				if len(res.Issues) != 0 {
					t.Errorf("Issues = %v, want none", issueMessages(res.Issues))
				}
				return
			}
			if len(res.Issues) != 1 || res.Issues[0].Severity != tt.wantSev {
				t.Fatalf("Issues = %+v, want one %s", res.Issues, tt.wantSev)
			}
		})
	}
}

func TestDesignLoadTimeMessageIncludesSeconds(t *testing.T) {
	doc := docFromHTML(t, "https://example.com", designCompletePage, 6300)
	res := AnalyzeDesign(doc, 6300, testMsgs, "en")
	if len(res.Issues) != 1 || !strings.Contains(res.Issues[0].Message, "6.3s") {
		t.Errorf("Issues = %v, want the measured seconds in the message", issueMessages(res.Issues))
	}
}

func TestDesignMissingStructure(t *testing.T) {
	html := `<html lang="en"><head></head><body><h1>T</h1><p>text</p></body></html>`
	doc := docFromHTML(t, "https://example.com", html, 1000)
	res := AnalyzeDesign(doc, 1000, testMsgs, "en")

	// viewport 20, navigation 15, call-to-action 12, favicon 3, footer 3.
	if res.Score != 47 {
		t.Errorf("Score = %d, want 47; issues %v", res.Score, issueMessages(res.Issues))
	}
	if len(res.Issues) != 5 {
		t.Errorf("Issues = %v, want 5", issueMessages(res.Issues))
	}
}

func TestDesignCTARecognizesCommonControls(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "submit input", body: `<form><input type="submit" value="Send"></form>`},
		{name: "button class link", body: `<a class="btn-primary" href="/signup">Sign up</a>`},
		{name: "mailto link", body: `<a href="mailto:info@example.com">Email us</a>`},
		{name: "tel link", body: `<a href="tel:+4681234567">Call us</a>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><head>
              <meta name="viewport" content="width=device-width"><link rel="icon" href="/f.ico">
            </head><body><nav>n</nav>` + tt.body + `<footer>f</footer></body></html>`
			doc := docFromHTML(t, "https://example.com", html, 1000)
			res := AnalyzeDesign(doc, 1000, testMsgs, "en")
			if got := res.Metrics["has_cta"]; got != true {
				t.Errorf("has_cta = %v, want true", got)
			}
		})
	}
}

func TestDesignImageDimensions(t *testing.T) {
	html := `<html><head>
      <meta name="viewport" content="width=device-width"><link rel="icon" href="/f.ico">
    </head><body><nav>n</nav><button>b</button>
      <img src="/a.jpg" width="100" height="50">
      <img src="/b.jpg" style="width:100px;height:50px">
      <img src="/c.jpg" width="100">
      <img src="/d.jpg">
    <footer>f</footer></body></html>`
	doc := docFromHTML(t, "https://example.com", html, 1000)
	res := AnalyzeDesign(doc, 1000, testMsgs, "en")

	if got := res.Metrics["images_missing_dimensions"]; got != 2 {
		t.Errorf("images_missing_dimensions = %v, want 2", got)
	}
	// Two offenders at 2 points each.
	if res.Score != 96 {
		t.Errorf("Score = %d, want 96", res.Score)
	}
}

func TestDesignDOMSize(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><head>
      <meta name="viewport" content="width=device-width"><link rel="icon" href="/f.ico">
    </head><body><nav>n</nav><button>b</button>`)
	for i := 0; i < 1600; i++ {
		sb.WriteString("<span>x</span>")
	}
	sb.WriteString(`<footer>f</footer></body></html>`)

	doc := docFromHTML(t, "https://example.com", sb.String(), 1000)
	res := AnalyzeDesign(doc, 1000, testMsgs, "en")

	if res.Score != 92 {
		t.Errorf("Score = %d, want 92; issues %v", res.Score, issueMessages(res.Issues))
	}
}
