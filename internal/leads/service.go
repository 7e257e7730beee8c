package leads

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AthlasSoftware/leadmagnet/internal/analysis"
	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/metrics"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/telemetry"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidURL   = errors.New("invalid url")
)

// AnalysisRunner is the engine surface the service depends on.
type AnalysisRunner interface {
	Analyze(ctx context.Context, rawURL string, opts analysis.Options) (*analysis.AnalysisResult, error)
}

// Service runs analyses and captures the submitting lead.
type Service struct {
	Repo          Repo
	Engine        AnalysisRunner
	DefaultLocale string
	DeepAnalysis  bool

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService constructs a Service.
func NewService(repo Repo, engine AnalysisRunner, defaultLocale string, deepAnalysis bool) *Service {
	return &Service{
		Repo:          repo,
		Engine:        engine,
		DefaultLocale: defaultLocale,
		DeepAnalysis:  deepAnalysis,
		now:           time.Now,
		newID:         uuid.New,
	}
}

// AnalyzeRequest is a validated-on-entry analysis submission.
type AnalyzeRequest struct {
	Email  string
	URL    string
	Locale string
}

// Analyze validates the request, runs the full page analysis and stores the
// lead. A storage failure does not discard the report; the caller still gets
// the result while the miss is logged.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Lead, error) {
	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return Lead{}, ErrInvalidEmail
	}

	target, err := page.ParseTargetURL(req.URL)
	if err != nil {
		return Lead{}, ErrInvalidURL
	}

	locale := req.Locale
	if strings.TrimSpace(locale) == "" {
		locale = s.DefaultLocale
	}
	locale = i18n.NormalizeLocale(locale)

	metrics.IncAnalysisStarted()
	started := s.now()

	result, err := s.Engine.Analyze(ctx, target.String(), analysis.Options{
		Locale:    locale,
		LocalOnly: !s.DeepAnalysis,
	})
	if err != nil {
		metrics.IncAnalysisFailed()
		return Lead{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDuration(s.now().Sub(started).Seconds())

	lead := Lead{
		ID:                 s.newID(),
		Email:              email,
		SiteURL:            target.String(),
		Locale:             locale,
		OverallScore:       result.Overview.OverallScore,
		AccessibilityScore: result.Accessibility.Score,
		SEOScore:           result.SEO.Score,
		DesignScore:        result.Design.Score,
		Result:             result,
		CreatedAt:          s.now().UTC(),
	}

	if err := s.Repo.Create(ctx, lead); err != nil {
		telemetry.Error("leads.store_failed", map[string]any{
			"lead_id": lead.ID.String(),
			"url":     lead.SiteURL,
			"error":   err.Error(),
		})
	} else {
		metrics.IncLeadCreated()
	}

	return lead, nil
}

// Get returns a stored lead by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Lead, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns stored leads newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Lead, error) {
	return s.Repo.List(ctx, limit, offset)
}
