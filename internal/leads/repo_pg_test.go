package leads

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/AthlasSoftware/leadmagnet/internal/analysis"
)

func sampleLead() Lead {
	return Lead{
		ID:                 uuid.MustParse("6f21b7e4-8a43-4b30-9f5f-0a1c2d3e4f50"),
		Email:              "owner@example.se",
		SiteURL:            "https://example.se",
		Locale:             "sv",
		OverallScore:       82,
		AccessibilityScore: 92,
		SEOScore:           75,
		DesignScore:        80,
		Result: &analysis.AnalysisResult{
			Overview: analysis.OverviewResult{OverallScore: 82, Summary: "Bra jobbat!"},
		},
		CreatedAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestPGRepoCreateStoresResultAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	lead := sampleLead()

	mock.ExpectExec("INSERT INTO leads").
		WithArgs(
			lead.ID,
			lead.Email,
			lead.SiteURL,
			lead.Locale,
			lead.OverallScore,
			lead.AccessibilityScore,
			lead.SEOScore,
			lead.DesignScore,
			sqlmock.AnyArg(), // result JSONB
			lead.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), lead); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	lead := sampleLead()
	payload, err := json.Marshal(lead.Result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "email", "site_url", "locale", "overall_score",
		"accessibility_score", "seo_score", "design_score", "result", "created_at",
	}).AddRow(
		lead.ID, lead.Email, lead.SiteURL, lead.Locale, lead.OverallScore,
		lead.AccessibilityScore, lead.SEOScore, lead.DesignScore, payload, lead.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM leads").WithArgs(lead.ID).WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != lead.Email || got.OverallScore != lead.OverallScore {
		t.Errorf("got %+v, want %+v", got, lead)
	}
	if got.Result == nil || got.Result.Overview.Summary != "Bra jobbat!" {
		t.Errorf("Result = %+v, want unmarshalled report", got.Result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM leads").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoListAppliesPaging(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	lead := sampleLead()
	payload, _ := json.Marshal(lead.Result)

	rows := sqlmock.NewRows([]string{
		"id", "email", "site_url", "locale", "overall_score",
		"accessibility_score", "seo_score", "design_score", "result", "created_at",
	}).AddRow(
		lead.ID, lead.Email, lead.SiteURL, lead.Locale, lead.OverallScore,
		lead.AccessibilityScore, lead.SEOScore, lead.DesignScore, payload, lead.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM leads").WithArgs(10, 20).WillReturnRows(rows)

	got, err := repo.List(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Email != lead.Email {
		t.Errorf("got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
