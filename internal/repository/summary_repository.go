// Package repository declares the persistence interfaces of the domain layer.
package repository

import (
	"context"
	"time"

	"fidel-summary/internal/domain/entity"
)

// SummaryListFilters contains optional filters for summary listing.
type SummaryListFilters struct {
	Variants []string   // Optional: restrict to these strategy variants
	From     *time.Time // Optional: created_at >= this time
	To       *time.Time // Optional: created_at <= this time
}

// SummaryRepository defines the persistence interface for stored summaries.
type SummaryRepository interface {
	// Create persists a new summary and fills in its ID and CreatedAt.
	Create(ctx context.Context, s *entity.Summary) error

	// FindByID retrieves a single summary.
	// Returns entity.ErrNotFound if no row matches.
	FindByID(ctx context.Context, id int64) (*entity.Summary, error)

	// ListByOwner retrieves an owner's summaries ordered by created_at DESC,
	// newest first, using LIMIT and OFFSET for pagination.
	// Returns an empty slice (not nil) when nothing matches.
	ListByOwner(ctx context.Context, ownerID string, filters SummaryListFilters, offset, limit int) ([]*entity.Summary, error)

	// CountByOwner returns the number of summaries matching the filters.
	// Used for pagination metadata.
	CountByOwner(ctx context.Context, ownerID string, filters SummaryListFilters) (int64, error)

	// Delete removes a summary owned by ownerID.
	// Returns entity.ErrNotFound if no row matches both id and owner.
	Delete(ctx context.Context, id int64, ownerID string) error

	// DeleteOlderThan removes summaries created before the cutoff and
	// returns the number of deleted rows. Used by the retention worker.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
