package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"FakeNewsDetector/internal/domain"
	"FakeNewsDetector/internal/ports"
)

// PostgresRepository persists delivered verdicts into Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.VerdictRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveVerdict appends one verdict snapshot to the history table.
func (r *PostgresRepository) SaveVerdict(ctx context.Context, rec domain.VerdictRecord) error {
	if r.db == nil {
		return nil
	}

	query, args, err := r.builder.
		Insert("verdicts").
		Columns("url", "method", "word_count", "label", "confidence", "source", "created_at").
		Values(rec.URL, rec.Method, rec.WordCount, string(rec.Label), rec.Confidence, string(rec.Source), rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert verdict: %w", err)
	}

	return nil
}

// RecentVerdicts returns the newest verdicts, most recent first.
func (r *PostgresRepository) RecentVerdicts(ctx context.Context, limit int) ([]domain.VerdictRecord, error) {
	if r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	query, args, err := r.builder.
		Select("url", "method", "word_count", "label", "confidence", "source", "created_at").
		From("verdicts").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query verdicts: %w", err)
	}
	defer rows.Close()

	var records []domain.VerdictRecord
	for rows.Next() {
		var (
			rec    domain.VerdictRecord
			label  string
			source string
		)
		if err := rows.Scan(&rec.URL, &rec.Method, &rec.WordCount, &label, &rec.Confidence, &source, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan verdict: %w", err)
		}
		rec.Label = domain.Label(label)
		rec.Source = domain.VerdictSource(source)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return records, nil
}
