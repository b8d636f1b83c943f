package detection

import (
	"math/rand"
	"testing"

	"github.com/agnivade/levenshtein"
	"github.com/stretchr/testify/assert"
)

func TestStringDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "ab", 1},
		{"kitten", "sitting", 3},
		{"discord", "dicsord", 2}, // Transposition costs two edits
		{"discord.com", "dizcord.com", 1},
		{"discord.com", "discord.gift", 4},
		{"reddit.com", "www.reddit.com", 4},
		{"Discord.com", "discord.com", 1}, // Case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, StringDistance(tt.a, tt.b))
		})
	}
}

func TestDistance_Generic(t *testing.T) {
	assert.Equal(t, 1, Distance([]int{1, 2, 3}, []int{1, 5, 3}))
	assert.Equal(t, 2, Distance([]rune("дискорд"), []rune("дизкорт")))
	assert.Equal(t, 0, Distance[string](nil, nil))
	assert.Equal(t, 2, Distance([]string{"a", "b"}, nil))
}

func TestDistance_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("abcd.-")

	randomString := func() string {
		b := make([]byte, rng.Intn(12))
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}

	for i := 0; i < 500; i++ {
		a, b, c := randomString(), randomString(), randomString()

		ab := StringDistance(a, b)
		assert.Equal(t, 0, StringDistance(a, a), "identity for %q", a)
		assert.Equal(t, ab, StringDistance(b, a), "symmetry for %q, %q", a, b)
		assert.LessOrEqual(t, StringDistance(a, c), ab+StringDistance(b, c), "triangle for %q, %q, %q", a, b, c)
		assert.LessOrEqual(t, ab, max(len(a), len(b)), "upper bound for %q, %q", a, b)
		assert.Equal(t, a == b, ab == 0, "zero iff identical for %q, %q", a, b)

		// ASCII input, so rune and byte distances agree
		assert.Equal(t, levenshtein.ComputeDistance(a, b), ab, "reference distance for %q, %q", a, b)
	}
}

func BenchmarkStringDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		StringDistance("www.youtube.com", "www.yuotube.co")
	}
}
