// Package entity defines the core domain entities and validation logic for the
// application. It contains the Summary business object along with its
// validation rules and domain-specific errors.
package entity

import "time"

// SourceType records how the original text entered the system.
type SourceType string

const (
	// SourceTypeText means the caller submitted the text directly.
	SourceTypeText SourceType = "text"

	// SourceTypeURL means the text was extracted from a fetched web page.
	SourceTypeURL SourceType = "url"
)

// Summary represents a stored summarization result.
// It keeps both the original input and the produced summary so results can be
// audited and re-generated with a different strategy later.
type Summary struct {
	ID             int64
	OwnerID        string
	OriginalText   string
	SummarizedText string
	Variant        string
	SourceType     SourceType
	SourceURL      string
	CreatedAt      time.Time
}
