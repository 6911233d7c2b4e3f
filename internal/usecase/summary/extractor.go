package summary

import (
	"context"
	"errors"
)

// TextExtractor fetches a web page and extracts its readable article text.
// Implementations must prevent SSRF, enforce size limits and timeouts, and
// validate redirect targets.
type TextExtractor interface {
	// ExtractText fetches the given URL and returns the extracted plain text.
	// The URL must use the http or https scheme.
	ExtractText(ctx context.Context, url string) (string, error)
}

// Sentinel errors for text extraction. They let callers distinguish failure
// modes and map them to the right HTTP status.
var (
	// ErrInvalidURL indicates the URL format is invalid or uses an unsupported scheme.
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the URL resolves to a private IP address (SSRF prevention).
	ErrPrivateIP = errors.New("private IP access denied (SSRF prevention)")

	// ErrTooManyRedirects indicates the redirect chain exceeded the configured maximum.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response body exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrFetchTimeout indicates the request exceeded the configured timeout.
	ErrFetchTimeout = errors.New("request timeout")

	// ErrExtractionFailed indicates no readable article text could be extracted.
	ErrExtractionFailed = errors.New("content extraction failed")
)
