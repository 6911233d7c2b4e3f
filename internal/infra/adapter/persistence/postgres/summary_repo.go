package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fidel-summary/internal/domain/entity"
	"fidel-summary/internal/repository"

	"github.com/lib/pq"
)

type SummaryRepo struct {
	db *sql.DB
}

func NewSummaryRepo(db *sql.DB) repository.SummaryRepository {
	return &SummaryRepo{db: db}
}

func (repo *SummaryRepo) Create(ctx context.Context, s *entity.Summary) error {
	const query = `
INSERT INTO summaries (owner_id, original_text, summarized_text, variant, source_type, source_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		s.OwnerID, s.OriginalText, s.SummarizedText, s.Variant, s.SourceType, s.SourceURL).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *SummaryRepo) FindByID(ctx context.Context, id int64) (*entity.Summary, error) {
	const query = `
SELECT id, owner_id, original_text, summarized_text, variant, source_type, source_url, created_at
FROM summaries
WHERE id = $1
LIMIT 1`
	var s entity.Summary
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.OwnerID, &s.OriginalText, &s.SummarizedText,
			&s.Variant, &s.SourceType, &s.SourceURL, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return &s, nil
}

func (repo *SummaryRepo) ListByOwner(ctx context.Context, ownerID string, filters repository.SummaryListFilters, offset, limit int) ([]*entity.Summary, error) {
	query, args := buildOwnerQuery(
		`SELECT id, owner_id, original_text, summarized_text, variant, source_type, source_url, created_at
FROM summaries`,
		ownerID, filters)
	query += fmt.Sprintf("\nORDER BY created_at DESC\nLIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]*entity.Summary, 0, limit)
	for rows.Next() {
		var s entity.Summary
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.OriginalText, &s.SummarizedText,
			&s.Variant, &s.SourceType, &s.SourceURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByOwner: Scan: %w", err)
		}
		summaries = append(summaries, &s)
	}
	return summaries, rows.Err()
}

func (repo *SummaryRepo) CountByOwner(ctx context.Context, ownerID string, filters repository.SummaryListFilters) (int64, error) {
	query, args := buildOwnerQuery(`SELECT COUNT(*) FROM summaries`, ownerID, filters)

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByOwner: %w", err)
	}
	return count, nil
}

func (repo *SummaryRepo) Delete(ctx context.Context, id int64, ownerID string) error {
	const query = `DELETE FROM summaries WHERE id = $1 AND owner_id = $2`
	result, err := repo.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *SummaryRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM summaries WHERE created_at < $1`
	result, err := repo.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: RowsAffected: %w", err)
	}
	return affected, nil
}

// buildOwnerQuery appends the WHERE clause for owner-scoped listing with
// optional variant and time-range filters. Placeholders are numbered from $1.
func buildOwnerQuery(base, ownerID string, filters repository.SummaryListFilters) (string, []interface{}) {
	conditions := []string{"owner_id = $1"}
	args := []interface{}{ownerID}

	if len(filters.Variants) > 0 {
		args = append(args, pq.Array(filters.Variants))
		conditions = append(conditions, fmt.Sprintf("variant = ANY($%d)", len(args)))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	return base + "\nWHERE " + strings.Join(conditions, " AND "), args
}
