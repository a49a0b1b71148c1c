package textkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableEntries(t *testing.T) {
	table := Table{
		"professional": {"proven", "trusted"},
		"empty":        {},
	}

	items, err := table.Entries("professional")
	require.NoError(t, err)
	assert.Equal(t, []string{"proven", "trusted"}, items)

	_, err = table.Entries("nope")
	assert.ErrorIs(t, err, ErrUnknownCategoryKey)

	items = table.EntriesOr("nope", "professional")
	assert.Len(t, items, 2)

	items = table.EntriesOr("professional", "empty")
	assert.Equal(t, []string{"proven", "trusted"}, items)
}

func TestPick(t *testing.T) {
	src := &SeqSource{Seq: []int{1}}
	got, err := Pick(src, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = Pick(src, nil)
	assert.ErrorIs(t, err, ErrEmptyTemplateSet)
}

func TestPickDeterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	first := make([]string, 0, 10)
	src := NewSource(42)
	for i := 0; i < 10; i++ {
		v, err := Pick(src, items)
		require.NoError(t, err)
		first = append(first, v)
	}

	src = NewSource(42)
	for i := 0; i < 10; i++ {
		v, err := Pick(src, items)
		require.NoError(t, err)
		assert.Equal(t, first[i], v)
	}
}

func TestRender(t *testing.T) {
	out := Render("{product} helps {audience} win with {product}", map[string]string{
		"{product}":  "Acme",
		"{audience}": "teams",
	})
	assert.Equal(t, "Acme helps teams win with Acme", out)

	// Unbound tokens stay as-is.
	out = Render("Hello {name}", map[string]string{"{other}": "x"})
	assert.Equal(t, "Hello {name}", out)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"over max", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "he"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), tt.max)
		})
	}
}

func TestRenderMaxNeverCutsMidToken(t *testing.T) {
	out := RenderMax("Discover {product} today and every day after that", map[string]string{
		"{product}": "SuperLongProductName",
	}, 30)
	assert.LessOrEqual(t, len([]rune(out)), 30)
	assert.NotContains(t, out, "{")
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestWordAndCharCount(t *testing.T) {
	assert.Equal(t, 6, WordCount("10 Amazing Tips You Need Now"))
	assert.Equal(t, 5, CharCount("héllo"))
}

func TestSentenceCount(t *testing.T) {
	assert.Equal(t, 1, SentenceCount("no punctuation"))
	assert.Equal(t, 2, SentenceCount("Great deal."))
	assert.Equal(t, 3, SentenceCount("One. Two!"))
}

func TestEstimateSyllables(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"cat", 1},
		{"amazing", 3},
		{"free", 1},
		{"xyz", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateSyllables(tt.in), tt.in)
	}
}

func TestSentiment(t *testing.T) {
	positive := []string{"amazing", "best"}
	negative := []string{"terrible", "worst"}

	assert.Equal(t, 50, Sentiment("plain neutral words", positive, negative))
	assert.Equal(t, 60, Sentiment("an amazing offer", positive, negative))
	assert.Equal(t, 40, Sentiment("a terrible offer", positive, negative))

	loud := strings.Repeat("amazing ", 10)
	assert.Equal(t, 100, Sentiment(loud, positive, negative))
}

func TestReadabilityBounds(t *testing.T) {
	for _, s := range []string{"", "Simple words here", "Incomprehensibility notwithstanding, magnanimous exaggeration perseveres."} {
		r := Readability(s)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 100.0)
	}
}

func TestMarkers(t *testing.T) {
	assert.True(t, HasNumber("10 tips"))
	assert.False(t, HasNumber("ten tips"))
	assert.True(t, AddressesReader("What You Need to Know"))
	assert.True(t, AddressesReader("improve your reach"))
	assert.False(t, AddressesReader("youthful energy"))
	assert.True(t, ContainsAny("Totally Amazing Offer", []string{"amazing"}))
	assert.Equal(t, 2, CountMatches("free and amazing", []string{"free", "amazing", "secret"}))
	assert.True(t, StartsWithAny("How does it work", []string{"how", "why"}))
	assert.True(t, HasEmoji("deal 🔥"))
	assert.False(t, HasEmoji("deal"))
}

func TestLadder(t *testing.T) {
	ladder := Ladder{
		{Min: 80, Label: "excellent"},
		{Min: 60, Label: "good"},
		{Min: 40, Label: "average"},
		{Min: 0, Label: "needs improvement"},
	}
	assert.Equal(t, "excellent", ladder.Verdict(85))
	assert.Equal(t, "good", ladder.Verdict(65))
	assert.Equal(t, "average", ladder.Verdict(40))
	assert.Equal(t, "needs improvement", ladder.Verdict(12))
}

func TestClampRound(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 100))
	assert.Equal(t, 100, Clamp(120, 0, 100))
	assert.Equal(t, 55, Clamp(55, 0, 100))
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, 2, Round(2.4))
}
