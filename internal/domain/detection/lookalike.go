package detection

import (
	"github.com/stoik/link-guard/internal/domain"
)

// MaxLookalikeDistance is the exclusive upper bound on the edit distance of a
// lookalike host. Hosts this far or further from every entry are unrelated.
const MaxLookalikeDistance = 4

// Detector flags URLs whose host is a near miss of a watchlisted domain
//
// A Detector holds only its immutable watchlist and is safe for concurrent use.
type Detector struct {
	watchlist Watchlist
}

// NewDetector creates a lookalike detector over watchlist
func NewDetector(watchlist Watchlist) *Detector {
	return &Detector{watchlist: watchlist}
}

// Watchlist returns the protected domains the detector checks against
func (d *Detector) Watchlist() Watchlist {
	return d.watchlist
}

// Check reports the watchlisted domain rawURL impersonates, if any
func (d *Detector) Check(rawURL string) (string, bool) {
	v := d.Inspect(rawURL)
	return v.Lookalike, v.Matched()
}

// Inspect checks rawURL against the watchlist and returns the full verdict
//
// Entries are scanned in order and the first one at distance 1 to 3 wins.
// Distance 0 is the real domain and is never flagged. Malformed URLs and
// non-domain hosts yield a verdict with no lookalike.
func (d *Detector) Inspect(rawURL string) domain.Verdict {
	verdict := domain.Verdict{Link: rawURL}

	host, ok := DomainHost(rawURL)
	if !ok {
		return verdict
	}
	verdict.Host = host

	for _, protected := range d.watchlist.domains {
		distance := StringDistance(host, protected)
		if isLookalike(distance) {
			verdict.Lookalike = protected
			verdict.Distance = distance
			return verdict
		}
	}

	return verdict
}

// isLookalike applies the threshold policy to a distance score
func isLookalike(distance int) bool {
	return distance > 0 && distance < MaxLookalikeDistance
}
