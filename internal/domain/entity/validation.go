package entity

import (
	"fmt"
	"net"
	"net/url"
	"unicode/utf8"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// maxTextRunes caps the accepted input text size. Summarization is O(n²) in
// sentence count, so unbounded input is a resource-exhaustion vector.
const maxTextRunes = 200_000

// ValidateText checks that submitted text is present, valid UTF-8 and within
// the size cap. Returns a ValidationError describing the first failure.
func ValidateText(text string) error {
	if text == "" {
		return &ValidationError{Field: "text", Message: "text is required"}
	}
	if !utf8.ValidString(text) {
		return &ValidationError{Field: "text", Message: "text must be valid UTF-8"}
	}
	if utf8.RuneCountInString(text) > maxTextRunes {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text must not exceed %d characters", maxTextRunes),
		}
	}
	return nil
}

// ValidateOwnerID checks the owner identifier carried by authenticated requests.
func ValidateOwnerID(ownerID string) error {
	if ownerID == "" {
		return &ValidationError{Field: "owner_id", Message: "owner_id is required"}
	}
	if len(ownerID) > 128 {
		return &ValidationError{Field: "owner_id", Message: "owner_id must not exceed 128 characters"}
	}
	return nil
}

// ValidateURL validates the format and safety of a URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a valid host.
// It also blocks private IP addresses to prevent SSRF attacks.
// Returns a ValidationError if the URL is invalid or empty.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	// SSRF protection: resolve the host and reject private addresses
	host := parsedURL.Hostname()
	ips, err := net.LookupIP(host)
	if err == nil && len(ips) > 0 {
		for _, ip := range ips {
			if isPrivateIP(ip) {
				return &ValidationError{
					Field:   "url",
					Message: "url cannot point to private network",
				}
			}
		}
	}

	return nil
}

// isPrivateIP checks if an IP address is in a private or restricted range.
// This prevents SSRF attacks by blocking access to:
// - localhost (127.0.0.0/8, ::1)
// - link-local addresses (169.254.0.0/16, fe80::/10)
// - private networks (10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16)
// - cloud metadata endpoints (169.254.169.254)
func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() {
		return true
	}

	if ip.IsLinkLocalUnicast() {
		return true
	}

	privateIPv4Ranges := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"169.254.0.0/16", // link-local, includes cloud metadata
	}

	for _, cidr := range privateIPv4Ranges {
		_, subnet, _ := net.ParseCIDR(cidr)
		if subnet.Contains(ip) {
			return true
		}
	}

	return false
}
