package extractor

import (
	"fmt"
	"net"
	"net/url"

	"fidel-summary/internal/usecase/summary"
)

// validateURL checks the scheme and host of a URL and, when denyPrivateIPs is
// set, resolves the hostname and rejects private, loopback and link-local
// addresses. Run against the original URL and every redirect target.
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", summary.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", summary.ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", summary.ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	// Resolve before fetching so attacker-controlled hostnames cannot reach
	// the internal network.
	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", summary.ErrInvalidURL, hostname, err)
	}

	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to private IP %s",
				summary.ErrPrivateIP, hostname, ip.String())
		}
	}

	return nil
}

// isPrivateIP reports whether an IPv4 or IPv6 address is loopback, private or
// link-local.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
