package auth

import "strings"

// PublicEndpoints defines endpoints that don't require authentication:
// orchestration probes, the Prometheus scrape target and the token endpoint
// itself.
var PublicEndpoints = []string{
	"/healthz",
	"/readyz",
	"/livez",
	"/metrics",
	"/auth/token",
}

// IsPublicEndpoint checks if a given path is a public endpoint.
//
// Endpoints ending with '/' use prefix matching; all others require an exact
// match, a trailing slash variant or query parameters only. This prevents
// /healthz from matching /healthz/detail or /healthzz.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint {
			return true
		}
		if path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
