package leads

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AthlasSoftware/leadmagnet/internal/analysis"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new lead with its full report as JSONB.
func (r *PGRepo) Create(ctx context.Context, lead Lead) error {
	const query = `
INSERT INTO leads (
	id, email, site_url, locale, overall_score, accessibility_score, seo_score, design_score, result, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	payload, err := json.Marshal(lead.Result)
	if err != nil {
		return fmt.Errorf("marshal lead result: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Email,
		lead.SiteURL,
		lead.Locale,
		lead.OverallScore,
		lead.AccessibilityScore,
		lead.SEOScore,
		lead.DesignScore,
		payload,
		lead.CreatedAt,
	)
	return err
}

// GetByID returns a lead by ID.
func (r *PGRepo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	const query = `
SELECT id, email, site_url, locale, overall_score, accessibility_score, seo_score, design_score, result, created_at
FROM leads
WHERE id = $1
LIMIT 1`
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		return Lead{}, err
	}
	return lead, nil
}

// List returns leads newest first with limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Lead, error) {
	const query = `
SELECT id, email, site_url, locale, overall_score, accessibility_score, seo_score, design_score, result, created_at
FROM leads
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lead)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (Lead, error) {
	var lead Lead
	var payload []byte
	err := row.Scan(
		&lead.ID,
		&lead.Email,
		&lead.SiteURL,
		&lead.Locale,
		&lead.OverallScore,
		&lead.AccessibilityScore,
		&lead.SEOScore,
		&lead.DesignScore,
		&payload,
		&lead.CreatedAt,
	)
	if err != nil {
		return Lead{}, err
	}
	if len(payload) > 0 {
		var result analysis.AnalysisResult
		if err := json.Unmarshal(payload, &result); err != nil {
			return Lead{}, fmt.Errorf("unmarshal lead result: %w", err)
		}
		lead.Result = &result
	}
	return lead, nil
}
