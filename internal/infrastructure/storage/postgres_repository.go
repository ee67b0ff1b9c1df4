package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"DocAuditor/internal/domain"
	"DocAuditor/internal/ports"
)

// PostgresRepository persists finished reports for history and audit.
//
// Schema:
//
//	CREATE TABLE audit_reports (
//	    id             UUID PRIMARY KEY,
//	    url            TEXT NOT NULL,
//	    title          TEXT NOT NULL,
//	    weighted_score DOUBLE PRECISION NOT NULL,
//	    letter_grade   TEXT NOT NULL,
//	    payload        JSONB NOT NULL,
//	    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ReportRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveReport stores the full report JSON alongside its headline numbers.
func (r *PostgresRepository) SaveReport(ctx context.Context, report domain.Report) error {
	if r.db == nil {
		return nil
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	query, args, err := r.builder.
		Insert("audit_reports").
		Columns("id", "url", "title", "weighted_score", "letter_grade", "payload").
		Values(
			report.Metadata.ID,
			report.Metadata.URL,
			report.Metadata.Title,
			report.Overall.WeightedScore,
			report.Overall.LetterGrade,
			payload,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	return nil
}

// LastScore returns the most recent weighted score recorded for the URL. The
// second return is false when the page has never been audited.
func (r *PostgresRepository) LastScore(ctx context.Context, url string) (float64, bool, error) {
	if r.db == nil {
		return 0, false, nil
	}

	query, args, err := r.builder.
		Select("weighted_score").
		From("audit_reports").
		Where(sq.Eq{"url": url}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build select: %w", err)
	}

	var score float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query last score: %w", err)
	}

	return score, true, nil
}
