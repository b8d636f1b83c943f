package detection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_Check(t *testing.T) {
	detector := NewDetector(DefaultWatchlist())

	tests := []struct {
		name          string
		rawURL        string
		wantLookalike string
		wantMatch     bool
	}{
		{
			name:   "Exact match - legitimate domain",
			rawURL: "https://discord.com/",
		},
		{
			name:   "Exact match on last entry",
			rawURL: "https://discord.gift/abc",
		},
		{
			name:          "Substitution - dizcord.com",
			rawURL:        "https://dizcord.com/nitro",
			wantLookalike: "discord.com",
			wantMatch:     true,
		},
		{
			name:          "Transposition - dicsord.com",
			rawURL:        "http://dicsord.com",
			wantLookalike: "discord.com",
			wantMatch:     true,
		},
		{
			name:          "Dropped letter - www.redit.com",
			rawURL:        "https://www.redit.com/r/golang",
			wantLookalike: "www.reddit.com",
			wantMatch:     true,
		},
		{
			name:          "Three edits still flagged - www.yuotub.com",
			rawURL:        "https://www.yuotub.com/watch?v=1",
			wantLookalike: "www.youtube.com",
			wantMatch:     true,
		},
		{
			name:          "Falls through to later entry - discordd.gift",
			rawURL:        "https://discordd.gift/free",
			wantLookalike: "discord.gift",
			wantMatch:     true,
		},
		{
			name:   "Four edits not flagged - reddit.com without www",
			rawURL: "https://reddit.com/",
		},
		{
			name:   "Unrelated domain",
			rawURL: "https://example.com/",
		},
		{
			name:   "IP literal host",
			rawURL: "http://192.0.2.1/",
		},
		{
			name:   "No host",
			rawURL: "mailto:mod@dizcord.com",
		},
		{
			name:   "Malformed input",
			rawURL: "not a url",
		},
		{
			name:          "Case is not normalized - Discord.com flagged against itself",
			rawURL:        "https://Discord.com/",
			wantLookalike: "discord.com",
			wantMatch:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookalike, ok := detector.Check(tt.rawURL)
			assert.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.wantLookalike, lookalike)
		})
	}
}

func TestDetector_Inspect(t *testing.T) {
	detector := NewDetector(DefaultWatchlist())

	verdict := detector.Inspect("https://dizcord.com:443/gift")
	assert.Equal(t, "https://dizcord.com:443/gift", verdict.Link)
	assert.Equal(t, "dizcord.com", verdict.Host)
	assert.Equal(t, "discord.com", verdict.Lookalike)
	assert.Equal(t, 1, verdict.Distance)
	assert.True(t, verdict.Matched())

	verdict = detector.Inspect("http://[2001:db8::1]/")
	assert.Empty(t, verdict.Host)
	assert.False(t, verdict.Matched())
}

func TestDetector_FirstQualifyingEntryWins(t *testing.T) {
	// abcf.com is one edit from both entries
	forward, err := NewWatchlist([]string{"abcd.com", "abce.com"})
	require.NoError(t, err)
	backward, err := NewWatchlist([]string{"abce.com", "abcd.com"})
	require.NoError(t, err)

	lookalike, ok := NewDetector(forward).Check("https://abcf.com")
	assert.True(t, ok)
	assert.Equal(t, "abcd.com", lookalike)

	lookalike, ok = NewDetector(backward).Check("https://abcf.com")
	assert.True(t, ok)
	assert.Equal(t, "abce.com", lookalike)
}

func TestDetector_NotClosestEntry(t *testing.T) {
	// First entry is three edits away, second is one: order beats closeness
	wl, err := NewWatchlist([]string{"abxyz.io", "abcdf.io"})
	require.NoError(t, err)

	verdict := NewDetector(wl).Inspect("https://abcde.io")
	assert.Equal(t, "abxyz.io", verdict.Lookalike)
	assert.Equal(t, 3, verdict.Distance)
}

func TestDetector_EmptyWatchlist(t *testing.T) {
	_, ok := NewDetector(Watchlist{}).Check("https://dizcord.com")
	assert.False(t, ok)
}

func TestDetector_IdempotentAndConcurrent(t *testing.T) {
	detector := NewDetector(DefaultWatchlist())
	links := []string{"https://dizcord.com", "https://discord.com", "not a url", "https://www.yotube.com"}

	want := make([]string, len(links))
	for i, link := range links {
		want[i], _ = detector.Check(link)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, link := range links {
				got, _ := detector.Check(link)
				assert.Equal(t, want[i], got)
			}
		}()
	}
	wg.Wait()
}
