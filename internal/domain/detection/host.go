package detection

import (
	"net"
	"net/url"
	"strings"
)

// DomainHost extracts the domain-name host of rawURL
//
// It reports false when rawURL does not parse as an absolute URL, has no host,
// or its host is an IP literal. The host is returned exactly as parsed: case
// and any leading "www." are preserved.
func DomainHost(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return "", false
	}

	host := u.Hostname()
	if host == "" {
		return "", false
	}

	// Colons only appear in IPv6 literals, including zoned ones net.ParseIP rejects
	if strings.Contains(host, ":") || net.ParseIP(host) != nil {
		return "", false
	}

	return host, true
}
