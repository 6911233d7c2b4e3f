package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPage is used when the client omits the page parameter.
	DefaultPage = 1
	// DefaultLimit is used when the client omits the limit parameter.
	DefaultLimit = 20
	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// Params holds normalized pagination parameters.
type Params struct {
	Page  int
	Limit int
}

// Metadata describes one page of a paginated result set.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// FromRequest extracts pagination parameters from the query string.
// Out-of-range or unparseable values silently collapse to the defaults, so a
// sloppy client gets the first page instead of an error.
func FromRequest(r *http.Request) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			p.Page = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			p.Limit = v
			if p.Limit > MaxLimit {
				p.Limit = MaxLimit
			}
		}
	}
	return p
}
