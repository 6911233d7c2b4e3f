// Package summary provides use cases for producing and managing stored
// summaries. It glues input validation, the script gate, the strategy engine
// and persistence together.
package summary

import "errors"

// Sentinel errors for summary use case operations.
var (
	// ErrSummaryNotFound indicates that the requested summary was not found
	// or is not owned by the caller.
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrInvalidSummaryID indicates that the provided summary ID is invalid.
	// Summary IDs must be positive integers.
	ErrInvalidSummaryID = errors.New("invalid summary ID")
)
