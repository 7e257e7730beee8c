package leads

import (
	"time"

	"github.com/google/uuid"

	"github.com/AthlasSoftware/leadmagnet/internal/analysis"
)

// Lead is one submitted analysis request together with its result. The email
// is the lead-capture value; the stored report lets the follow-up email and
// the admin view reuse it without re-running the analysis.
type Lead struct {
	ID                 uuid.UUID                `json:"id"`
	Email              string                   `json:"email"`
	SiteURL            string                   `json:"siteUrl"`
	Locale             string                   `json:"locale"`
	OverallScore       int                      `json:"overallScore"`
	AccessibilityScore int                      `json:"accessibilityScore"`
	SEOScore           int                      `json:"seoScore"`
	DesignScore        int                      `json:"designScore"`
	Result             *analysis.AnalysisResult `json:"result,omitempty"`
	CreatedAt          time.Time                `json:"createdAt"`
}
