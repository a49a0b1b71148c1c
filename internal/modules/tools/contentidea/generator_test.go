package contentidea

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

var testNow = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

func TestGenerateIdeas(t *testing.T) {
	res, err := Generate(GenerateDTO{
		Niche:          "Email Marketing",
		TargetAudience: "startup founders",
		ContentType:    "blog",
		ContentFormat:  "list",
		Tone:           "casual",
		IdeaCount:      6,
		Keywords:       []string{"automation", "newsletters"},
		Goal:           "conversion",
	}, textkit.NewSource(42), testNow)
	require.NoError(t, err)

	assert.Equal(t, "blog", res.ContentType)
	assert.Equal(t, "Blog Posts", res.ContentTypeName)
	assert.Equal(t, 6, res.IdeaCount)
	require.Len(t, res.Ideas, 6)

	for i, idea := range res.Ideas {
		assert.Equal(t, i+1, idea.ID)
		assert.NotEmpty(t, idea.Title)
		assert.NotEmpty(t, idea.Description)
		assert.Equal(t, "Blog Posts", idea.Type)
		assert.Equal(t, "List", idea.Format)
		assert.NotEmpty(t, idea.Tags)
		assert.LessOrEqual(t, len(idea.Tags), 5)
	}
}

func TestGenerateDefaults(t *testing.T) {
	res, err := Generate(GenerateDTO{Niche: "fitness"}, textkit.NewSource(1), testNow)
	require.NoError(t, err)

	assert.Equal(t, "blog", res.ContentType)
	assert.Len(t, res.Ideas, defaultIdeaCount)
	assert.Equal(t, "How To", res.Ideas[0].Format)
}

func TestGenerateCountCap(t *testing.T) {
	res, err := Generate(GenerateDTO{Niche: "fitness", IdeaCount: 100}, textkit.NewSource(1), testNow)
	require.NoError(t, err)
	assert.Len(t, res.Ideas, maxIdeaCount)
}

func TestCalendar(t *testing.T) {
	res, err := Generate(GenerateDTO{Niche: "travel", IdeaCount: 8}, textkit.NewSource(5), testNow)
	require.NoError(t, err)

	require.Len(t, res.Calendar, 5)
	assert.Equal(t, "Mon, Mar 16", res.Calendar[0].Date)
	assert.Equal(t, "Wed, Mar 18", res.Calendar[1].Date)
	assert.Equal(t, res.Ideas[0].Title, res.Calendar[0].Idea)
}

func TestGenerateTags(t *testing.T) {
	tags := generateTags("Email Marketing", []string{"automation!", "b2b", "growth", "extra"}, "how-to", "casual")
	assert.LessOrEqual(t, len(tags), 5)
	assert.Contains(t, tags, "Email Marketing")
	assert.Contains(t, tags, "howto")
	assert.Contains(t, tags, "automation")
}

func TestGenerateMissingNiche(t *testing.T) {
	_, err := Generate(GenerateDTO{}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, ErrMissingNiche)
}

func TestGenerateDeterministic(t *testing.T) {
	dto := GenerateDTO{Niche: "gardening", IdeaCount: 4}
	a, err := Generate(dto, textkit.NewSource(11), testNow)
	require.NoError(t, err)
	b, err := Generate(dto, textkit.NewSource(11), testNow)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
