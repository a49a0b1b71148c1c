package headline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

func TestAnalyzeFlagsAndMetrics(t *testing.T) {
	res, err := Analyze(AnalyzeDTO{Headline: "10 Amazing Tips You Need to Know"}, textkit.NewSource(1))
	require.NoError(t, err)

	assert.True(t, res.Analysis.HasNumbers)
	assert.True(t, res.Analysis.HasPowerWords)
	assert.True(t, res.Analysis.AddressesReader)
	assert.False(t, res.Analysis.IsQuestion)
	assert.True(t, res.Analysis.OptimalLength)
	assert.False(t, res.Analysis.OptimalChars)

	assert.Equal(t, 7, res.Metrics.WordCount)
	assert.Equal(t, 32, res.Metrics.CharCount)
	assert.Equal(t, 60, res.Metrics.SentimentScore)

	assert.Contains(t, res.Strengths, "Includes attention-grabbing power words")
	assert.Contains(t, res.Strengths, "Numbers add specificity and credibility")
	assert.Contains(t, res.Strengths, "Directly addresses the reader")
}

func TestAnalyzeScoreBounds(t *testing.T) {
	headlines := []string{
		"Hi",
		"Why You Should Never Ignore These Proven Secrets?",
		"The worst terrible horrible disaster you will ever avoid in your life",
		"A perfectly ordinary sentence about gardening tools and their upkeep",
	}
	for _, h := range headlines {
		res, err := Analyze(AnalyzeDTO{Headline: h}, textkit.NewSource(7))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.OverallScore, 0, h)
		assert.LessOrEqual(t, res.OverallScore, 100, h)
		for _, alt := range res.Alternatives {
			assert.GreaterOrEqual(t, alt.Score, 0, alt.Text)
			assert.LessOrEqual(t, alt.Score, 100, alt.Text)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	dto := AnalyzeDTO{Headline: "Grow Your Newsletter", ContentType: "email", Platform: "email"}

	a, err := Analyze(dto, textkit.NewSource(42))
	require.NoError(t, err)
	b, err := Analyze(dto, textkit.NewSource(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAnalyzeQuestionDetection(t *testing.T) {
	res, err := Analyze(AnalyzeDTO{Headline: "How do you grow faster"}, textkit.NewSource(1))
	require.NoError(t, err)
	assert.True(t, res.Analysis.IsQuestion)

	res, err = Analyze(AnalyzeDTO{Headline: "Growth strategies explained?"}, textkit.NewSource(1))
	require.NoError(t, err)
	assert.True(t, res.Analysis.IsQuestion)
}

func TestAnalyzeAlternatives(t *testing.T) {
	res, err := Analyze(AnalyzeDTO{Headline: "Boost Your Sales"}, textkit.NewSource(3))
	require.NoError(t, err)
	require.Len(t, res.Alternatives, 4)

	assert.Equal(t, "Is boost your sales The Right Solution For You?", res.Alternatives[0].Text)
	assert.Regexp(t, `^(5|7|10|15) Boost Your Sales$`, res.Alternatives[1].Text)
	assert.Regexp(t, `^(Amazing|Incredible|Proven|Secret|Ultimate) Boost Your Sales$`, res.Alternatives[2].Text)
	assert.Equal(t, "How boost your sales Can Transform Your Results", res.Alternatives[3].Text)
}

func TestAnalyzeEmptyHeadline(t *testing.T) {
	_, err := Analyze(AnalyzeDTO{Headline: "   "}, textkit.NewSource(1))
	assert.ErrorIs(t, err, ErrEmptyHeadline)
}
