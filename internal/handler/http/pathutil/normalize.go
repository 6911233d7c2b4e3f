package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to templates, most specific first.
// Pre-compiled at init so NormalizePath stays cheap on the hot path.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/summaries/\d+$`), "/summaries/:id"},
}

// NormalizePath collapses ID-bearing paths to a template form so metric
// labels stay low-cardinality. Static paths pass through unchanged.
//
//	NormalizePath("/summaries/123")   // "/summaries/:id"
//	NormalizePath("/summaries/123/")  // "/summaries/:id"
//	NormalizePath("/healthz")         // "/healthz"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
