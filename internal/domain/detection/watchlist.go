package detection

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrInvalidWatchlistEntry is returned when a protected domain is not a plain
// lower-case DNS hostname
var ErrInvalidWatchlistEntry = errors.New("invalid watchlist entry")

// defaultDomains are the brand domains protected when no override is configured
var defaultDomains = []string{
	"www.reddit.com",
	"discord.com",
	"www.youtube.com",
	"discord.gift",
}

// Watchlist is an ordered, immutable set of protected domains
//
// Order matters: the detector reports the first entry that qualifies, not the
// closest one. The zero value is an empty watchlist.
type Watchlist struct {
	domains []string
}

// NewWatchlist validates domains and returns them as a watchlist, preserving order
func NewWatchlist(domains []string) (Watchlist, error) {
	entries := make([]string, 0, len(domains))
	for _, d := range domains {
		if err := validateHostname(d); err != nil {
			return Watchlist{}, err
		}
		entries = append(entries, d)
	}
	return Watchlist{domains: entries}, nil
}

// DefaultWatchlist returns the built-in protected domains
func DefaultWatchlist() Watchlist {
	wl, err := NewWatchlist(defaultDomains)
	if err != nil {
		panic(err)
	}
	return wl
}

// Domains returns a copy of the entries in watchlist order
func (w Watchlist) Domains() []string {
	out := make([]string, len(w.domains))
	copy(out, w.domains)
	return out
}

// Len returns the number of protected domains
func (w Watchlist) Len() int {
	return len(w.domains)
}

// validateHostname checks that s is a lower-case DNS name with no scheme, port or path
func validateHostname(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty domain", ErrInvalidWatchlistEntry)
	}
	if len(s) > 253 {
		return fmt.Errorf("%w: %q longer than 253 characters", ErrInvalidWatchlistEntry, s)
	}
	if net.ParseIP(s) != nil {
		return fmt.Errorf("%w: %q is an IP address", ErrInvalidWatchlistEntry, s)
	}

	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 {
			return fmt.Errorf("%w: %q has an empty or oversized label", ErrInvalidWatchlistEntry, s)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("%w: %q has a label starting or ending with '-'", ErrInvalidWatchlistEntry, s)
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
				return fmt.Errorf("%w: %q contains %q", ErrInvalidWatchlistEntry, s, c)
			}
		}
	}

	return nil
}
