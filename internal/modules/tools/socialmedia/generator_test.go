package socialmedia

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestGeneratePerPlatform(t *testing.T) {
	res, err := Generate(GenerateDTO{
		Niche:       "fitness",
		ContentType: "educational",
		BrandVoice:  "casual",
		Interests:   []string{"yoga", "running"},
		Platforms:   []string{"instagram", "twitter", "linkedin"},
	}, textkit.NewSource(42), testNow)
	require.NoError(t, err)

	require.Len(t, res.Posts, 3)
	for _, p := range res.Posts {
		cfg, ok := PlatformFor(p.Platform)
		require.True(t, ok)
		assert.Equal(t, cfg.Name, p.PlatformName)
		assert.LessOrEqual(t, len([]rune(p.Content)), cfg.MaxLength)
		assert.LessOrEqual(t, len(p.Hashtags), cfg.MaxHashtags)
		assert.Contains(t, p.Content, "fitness")
		assert.GreaterOrEqual(t, p.Metrics.EstimatedReach, 2000)
		assert.Less(t, p.Metrics.EstimatedReach, 7000)
		assert.GreaterOrEqual(t, p.Metrics.EstimatedEngagement, 500)
		assert.Less(t, p.Metrics.EstimatedEngagement, 1500)
	}
	assert.Equal(t, 3, res.Summary.TotalPosts)
	assert.Equal(t, "fitness", res.Summary.Niche)
}

func TestGenerateQuantityCap(t *testing.T) {
	res, err := Generate(GenerateDTO{
		Niche:        "food",
		ContentType:  "promotional",
		Platforms:    []string{"instagram", "twitter", "facebook"},
		PostQuantity: 2,
	}, textkit.NewSource(1), testNow)
	require.NoError(t, err)
	assert.Len(t, res.Posts, 2)
	assert.Equal(t, 2, res.Summary.TotalPosts)
}

func TestGenerateCustomNiche(t *testing.T) {
	_, err := Generate(GenerateDTO{Niche: "custom", Platforms: []string{"twitter"}}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, ErrMissingCustomNiche)

	res, err := Generate(GenerateDTO{
		Niche:       "custom",
		CustomNiche: "vintage synthesizers",
		ContentType: "educational",
		Platforms:   []string{"twitter"},
	}, textkit.NewSource(1), testNow)
	require.NoError(t, err)
	assert.Contains(t, res.Posts[0].Content, "vintage synthesizers")
	assert.Equal(t, "vintage synthesizers", res.Summary.Niche)
}

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(GenerateDTO{Platforms: []string{"twitter"}}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, ErrMissingNiche)

	_, err = Generate(GenerateDTO{Niche: "food"}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, ErrNoPlatforms)

	_, err = Generate(GenerateDTO{Niche: "food", ContentType: "educational", Platforms: []string{"myspace"}}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, ErrUnknownPlatform)

	_, err = Generate(GenerateDTO{Niche: "food", ContentType: "clickbait", Platforms: []string{"twitter"}}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, textkit.ErrUnknownCategoryKey)

	_, err = Generate(GenerateDTO{Niche: "food", Platforms: []string{"twitter"}}, textkit.NewSource(1), testNow)
	assert.ErrorIs(t, err, textkit.ErrUnknownCategoryKey)
}

func TestHashtags(t *testing.T) {
	tags := Hashtags("fitness", []string{"cross fit"}, 10)
	assert.LessOrEqual(t, len(tags), 10)
	assert.Contains(t, tags, "#wellness")
	assert.Contains(t, tags, "#crossfit")
	for _, tag := range tags {
		assert.NotContains(t, tag, " ")
	}

	short := Hashtags("fitness", nil, 3)
	assert.Equal(t, []string{"#wellness", "#health", "#workout"}, short)

	// Unknown niche falls back to interests plus the general pool.
	tags = Hashtags("underwater-basket-weaving", nil, 5)
	assert.Contains(t, tags, "#viral")
}

func TestGenerateDeterministic(t *testing.T) {
	dto := GenerateDTO{Niche: "travel", ContentType: "inspirational", Platforms: []string{"instagram", "tiktok"}}
	a, err := Generate(dto, textkit.NewSource(9), testNow)
	require.NoError(t, err)
	b, err := Generate(dto, textkit.NewSource(9), testNow)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
