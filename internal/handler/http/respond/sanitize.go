package respond

import (
	"regexp"
)

var (
	// Bearer tokens occasionally surface in wrapped transport errors.
	bearerTokenPattern = regexp.MustCompile(`Bearer [a-zA-Z0-9-_.]+`)

	// Database passwords inside a DSN.
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
