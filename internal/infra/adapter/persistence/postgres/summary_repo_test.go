package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"fidel-summary/internal/domain/entity"
	pg "fidel-summary/internal/infra/adapter/persistence/postgres"
	"fidel-summary/internal/repository"
)

func sumRow(s *entity.Summary) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "original_text", "summarized_text",
		"variant", "source_type", "source_url", "created_at",
	}).AddRow(
		s.ID, s.OwnerID, s.OriginalText, s.SummarizedText,
		s.Variant, s.SourceType, s.SourceURL, s.CreatedAt,
	)
}

func TestSummaryRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO summaries")).
		WithArgs("user-1", "ሰላም ዓለም። ሁለተኛ።", "ሰላም ዓለም", "textrank",
			entity.SourceTypeText, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	repo := pg.NewSummaryRepo(db)
	s := &entity.Summary{
		OwnerID:        "user-1",
		OriginalText:   "ሰላም ዓለም። ሁለተኛ።",
		SummarizedText: "ሰላም ዓለም",
		Variant:        "textrank",
		SourceType:     entity.SourceTypeText,
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if s.ID != 7 || !s.CreatedAt.Equal(now) {
		t.Errorf("Create did not fill ID/CreatedAt: id=%d created=%v", s.ID, s.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_FindByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	want := &entity.Summary{
		ID: 1, OwnerID: "user-1",
		OriginalText: "ሰላም ዓለም። ሁለተኛ።", SummarizedText: "ሰላም ዓለም",
		Variant: "hybrid", SourceType: entity.SourceTypeText,
		CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(sumRow(want))

	repo := pg.NewSummaryRepo(db)
	got, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_FindByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "original_text", "summarized_text",
			"variant", "source_type", "source_url", "created_at",
		}))

	repo := pg.NewSummaryRepo(db)
	_, err := repo.FindByID(context.Background(), 99)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("FindByID err=%v, want ErrNotFound", err)
	}
}

func TestSummaryRepo_ListByOwner(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM summaries").
		WithArgs("user-1", 20, 0).
		WillReturnRows(sumRow(&entity.Summary{
			ID: 1, OwnerID: "user-1",
			OriginalText: "ሀ ለ ሐ።", SummarizedText: "ሀ ለ ሐ",
			Variant: "simple", SourceType: entity.SourceTypeText, CreatedAt: now,
		}))

	repo := pg.NewSummaryRepo(db)
	got, err := repo.ListByOwner(context.Background(), "user-1", repository.SummaryListFilters{}, 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByOwner err=%v len=%d", err, len(got))
	}
}

func TestSummaryRepo_ListByOwner_VariantFilter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("variant = ANY($2)")).
		WithArgs("user-1", sqlmock.AnyArg(), 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "original_text", "summarized_text",
			"variant", "source_type", "source_url", "created_at",
		}))

	repo := pg.NewSummaryRepo(db)
	filters := repository.SummaryListFilters{Variants: []string{"textrank", "hybrid"}}
	got, err := repo.ListByOwner(context.Background(), "user-1", filters, 0, 10)
	if err != nil {
		t.Fatalf("ListByOwner err=%v", err)
	}
	if got == nil {
		t.Fatal("ListByOwner returned nil, want empty slice")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_CountByOwner(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM summaries")).
		WithArgs("user-1", from).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	repo := pg.NewSummaryRepo(db)
	got, err := repo.CountByOwner(context.Background(), "user-1", repository.SummaryListFilters{From: &from})
	if err != nil {
		t.Fatalf("CountByOwner err=%v", err)
	}
	if got != 5 {
		t.Errorf("CountByOwner = %d, want 5", got)
	}
}

func TestSummaryRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM summaries WHERE id = $1 AND owner_id = $2")).
		WithArgs(int64(3), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewSummaryRepo(db)
	if err := repo.Delete(context.Background(), 3, "user-1"); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestSummaryRepo_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM summaries")).
		WithArgs(int64(3), "other-user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewSummaryRepo(db)
	err := repo.Delete(context.Background(), 3, "other-user")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Delete err=%v, want ErrNotFound", err)
	}
}

func TestSummaryRepo_DeleteOlderThan(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	cutoff := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM summaries WHERE created_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 42))

	repo := pg.NewSummaryRepo(db)
	got, err := repo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("DeleteOlderThan err=%v", err)
	}
	if got != 42 {
		t.Errorf("DeleteOlderThan = %d, want 42", got)
	}
}
