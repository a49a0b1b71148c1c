package seometa

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	res, err := Generate(GenerateDTO{
		PageTitle:         "Email Marketing for Startups",
		PrimaryKeyword:    "email marketing",
		ContentType:       "blog",
		Tone:              "professional",
		SecondaryKeywords: []string{"newsletters", "automation"},
	}, textkit.NewSource(42), testNow)
	require.NoError(t, err)

	require.Len(t, res.Variations, 3)
	for _, v := range res.Variations {
		assert.LessOrEqual(t, v.TitleLength, 60)
		assert.LessOrEqual(t, v.DescLength, 155)
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.Description)
	}

	assert.Equal(t, "Blog", res.ContentType)
	assert.Equal(t, res.Variations[0].Title, res.Metadata.Title)
	assert.Equal(t, "https://www.yourwebsite.com/email-marketing-for-startups", res.URL)

	assert.GreaterOrEqual(t, res.Analysis.OverallScore, 0)
	assert.LessOrEqual(t, res.Analysis.OverallScore, 100)
	for _, s := range []int{res.Analysis.KeywordScore, res.Analysis.LengthScore, res.Analysis.EngagementScore, res.Analysis.ReadabilityScore} {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	dto := GenerateDTO{PageTitle: "SEO Basics", PrimaryKeyword: "seo"}
	a, err := Generate(dto, textkit.NewSource(7), testNow)
	require.NoError(t, err)
	b, err := Generate(dto, textkit.NewSource(7), testNow)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestKeywordSuggestions(t *testing.T) {
	got := keywordSuggestions("seo", []string{"link building"})
	assert.LessOrEqual(t, len(got), 12)
	assert.Contains(t, got, "seo")
	assert.Contains(t, got, "best seo")
	assert.Contains(t, got, "search engine optimization")

	// Duplicates collapse.
	got = keywordSuggestions("content marketing", []string{"content marketing"})
	seen := map[string]int{}
	for _, s := range got {
		seen[s]++
	}
	assert.Equal(t, 1, seen["content marketing"])
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "email-marketing-for-startups", slugify("Email Marketing for Startups"))
	assert.Equal(t, "what-s-new-in-2026", slugify("What's New in 2026?"))
}

func TestKeywordScore(t *testing.T) {
	score := keywordScore("Email Marketing Guide for Beginners", "Learn email marketing step by step with our guide.", "email marketing")
	assert.GreaterOrEqual(t, score, 70)

	missing := keywordScore("Totally Unrelated Title", "Nothing relevant here at all.", "email marketing")
	assert.Less(t, missing, score)
}

func TestReadabilityScoreSeparators(t *testing.T) {
	plain := readabilityScore("Five ways to grow faster", "First sentence here. Second sentence too.")
	piped := readabilityScore("Five ways to grow | Brand", "First sentence here. Second sentence too.")
	assert.Greater(t, plain, piped)
}

func TestGenerateMissingFields(t *testing.T) {
	_, err := Generate(GenerateDTO{PageTitle: "x"}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = Generate(GenerateDTO{PrimaryKeyword: "x"}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestYearBinding(t *testing.T) {
	res, err := Generate(GenerateDTO{PageTitle: "Guide", PrimaryKeyword: "analytics"}, textkit.NewSource(3), testNow)
	require.NoError(t, err)
	for _, v := range res.Variations {
		assert.False(t, strings.Contains(v.Title, "{year}"))
		assert.False(t, strings.Contains(v.Description, "{year}"))
	}
}
