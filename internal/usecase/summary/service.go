package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fidel-summary/internal/common/pagination"
	"fidel-summary/internal/domain/entity"
	"fidel-summary/internal/observability/metrics"
	"fidel-summary/internal/repository"
	"fidel-summary/internal/script"
	"fidel-summary/internal/summarize"
)

// CreateInput represents the input parameters for producing a new summary.
// Exactly one of Text and URL should be set; when both are present the
// submitted text wins and the URL is ignored.
type CreateInput struct {
	OwnerID string
	Text    string
	URL     string
	Variant string
}

// ListInput represents the parameters for listing an owner's summaries.
type ListInput struct {
	OwnerID    string
	Filters    repository.SummaryListFilters
	Pagination pagination.Params
}

// PaginatedResult contains one page of summaries plus pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Summary
	Pagination pagination.Metadata
}

// Service provides summary management use cases. It validates input, gates
// text by script share, dispatches to the strategy engine and persists the
// result.
type Service struct {
	Repo      repository.SummaryRepository
	Engine    *summarize.Engine
	Gate      *script.Gate
	Extractor TextExtractor
	Logger    *slog.Logger
}

// Create produces a summary for the given input and stores it.
//
// Resolution order: submitted text, else text extracted from the URL. The
// resolved text must pass the script gate. An unrecognized variant falls back
// to the default strategy; the fallback is logged and counted, never an error.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Summary, error) {
	if err := entity.ValidateOwnerID(in.OwnerID); err != nil {
		return nil, err
	}

	text, sourceType, err := s.resolveText(ctx, in)
	if err != nil {
		return nil, err
	}

	gate := s.Gate.Validate(text)
	if !gate.IsValid {
		metrics.ScriptGateRejectionsTotal.Inc()
		return nil, fmt.Errorf("%w: target script share %.1f%%",
			entity.ErrUnsupportedScript, gate.Percentage)
	}

	variant, ok := summarize.ParseVariant(in.Variant)
	if !ok {
		metrics.VariantFallbacksTotal.Inc()
		s.logger().WarnContext(ctx, "unrecognized variant, using default",
			slog.String("requested", in.Variant),
			slog.String("used", string(variant)))
	}

	start := time.Now()
	summarized, used, err := s.Engine.Summarize(text, variant)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	metrics.SummarizationDuration.WithLabelValues(string(used)).Observe(time.Since(start).Seconds())
	metrics.SummaryLengthChars.Observe(float64(len([]rune(summarized))))

	result := &entity.Summary{
		OwnerID:        in.OwnerID,
		OriginalText:   text,
		SummarizedText: summarized,
		Variant:        string(used),
		SourceType:     sourceType,
		SourceURL:      in.URL,
	}
	if sourceType == entity.SourceTypeText {
		result.SourceURL = ""
	}

	if err := s.Repo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("store summary: %w", err)
	}

	metrics.SummariesCreatedTotal.WithLabelValues(string(used), string(sourceType)).Inc()
	s.logger().InfoContext(ctx, "summary created",
		slog.Int64("id", result.ID),
		slog.String("variant", string(used)),
		slog.String("source_type", string(sourceType)),
		slog.Int("original_chars", len([]rune(text))),
		slog.Int("summary_chars", len([]rune(summarized))))

	return result, nil
}

// Get retrieves a single summary owned by ownerID.
// Returns ErrInvalidSummaryID for non-positive IDs and ErrSummaryNotFound when
// the row is missing or owned by someone else.
func (s *Service) Get(ctx context.Context, id int64, ownerID string) (*entity.Summary, error) {
	if id <= 0 {
		return nil, ErrInvalidSummaryID
	}

	result, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrSummaryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	if result.OwnerID != ownerID {
		// Ownership mismatch is indistinguishable from absence to the caller.
		return nil, ErrSummaryNotFound
	}
	return result, nil
}

// List retrieves one page of an owner's summaries, newest first.
func (s *Service) List(ctx context.Context, in ListInput) (*PaginatedResult, error) {
	if err := entity.ValidateOwnerID(in.OwnerID); err != nil {
		return nil, err
	}

	total, err := s.Repo.CountByOwner(ctx, in.OwnerID, in.Filters)
	if err != nil {
		return nil, fmt.Errorf("count summaries: %w", err)
	}

	offset := pagination.CalculateOffset(in.Pagination.Page, in.Pagination.Limit)
	data, err := s.Repo.ListByOwner(ctx, in.OwnerID, in.Filters, offset, in.Pagination.Limit)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}

	return &PaginatedResult{
		Data: data,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       in.Pagination.Page,
			Limit:      in.Pagination.Limit,
			TotalPages: pagination.CalculateTotalPages(total, in.Pagination.Limit),
		},
	}, nil
}

// Delete removes a summary owned by ownerID.
func (s *Service) Delete(ctx context.Context, id int64, ownerID string) error {
	if id <= 0 {
		return ErrInvalidSummaryID
	}

	err := s.Repo.Delete(ctx, id, ownerID)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrSummaryNotFound
	}
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	return nil
}

// resolveText returns the text to summarize and its source type.
func (s *Service) resolveText(ctx context.Context, in CreateInput) (string, entity.SourceType, error) {
	if in.Text != "" {
		if err := entity.ValidateText(in.Text); err != nil {
			return "", "", err
		}
		return in.Text, entity.SourceTypeText, nil
	}

	if in.URL == "" {
		return "", "", &entity.ValidationError{Field: "text", Message: "either text or url is required"}
	}
	if err := entity.ValidateURL(in.URL); err != nil {
		return "", "", err
	}
	if s.Extractor == nil {
		return "", "", fmt.Errorf("%w: URL input is not enabled", ErrExtractionFailed)
	}

	start := time.Now()
	text, err := s.Extractor.ExtractText(ctx, in.URL)
	if err != nil {
		metrics.ExtractionErrorsTotal.WithLabelValues(extractionErrorReason(err)).Inc()
		return "", "", fmt.Errorf("extract text: %w", err)
	}
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())

	if err := entity.ValidateText(text); err != nil {
		return "", "", fmt.Errorf("extracted text invalid: %w", err)
	}
	return text, entity.SourceTypeURL, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// extractionErrorReason maps extraction failures to a low-cardinality metric label.
func extractionErrorReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, ErrPrivateIP):
		return "private_ip"
	case errors.Is(err, ErrTooManyRedirects):
		return "redirects"
	case errors.Is(err, ErrBodyTooLarge):
		return "body_too_large"
	case errors.Is(err, ErrFetchTimeout):
		return "timeout"
	case errors.Is(err, ErrExtractionFailed):
		return "extraction_failed"
	default:
		return "other"
	}
}
