// Package summary provides HTTP handlers for summary endpoints: creating,
// retrieving, listing and deleting stored summaries.
package summary

import (
	"time"

	"fidel-summary/internal/domain/entity"
)

// DTO represents the JSON structure for summary data transfer.
type DTO struct {
	ID             int64     `json:"id" example:"1"`
	OriginalText   string    `json:"original_text"`
	SummarizedText string    `json:"summarized_text"`
	Variant        string    `json:"variant" example:"advanced"`
	SourceType     string    `json:"source_type" example:"text"`
	SourceURL      string    `json:"source_url,omitempty"`
	CreatedAt      time.Time `json:"created_at" example:"2026-02-10T12:00:00Z"`
}

func toDTO(s *entity.Summary) DTO {
	return DTO{
		ID:             s.ID,
		OriginalText:   s.OriginalText,
		SummarizedText: s.SummarizedText,
		Variant:        s.Variant,
		SourceType:     string(s.SourceType),
		SourceURL:      s.SourceURL,
		CreatedAt:      s.CreatedAt,
	}
}
