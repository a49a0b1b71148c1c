package emailtester

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpammySubjectLine(t *testing.T) {
	res, err := Test(TestDTO{SubjectLine: "Free money now!!!"})
	require.NoError(t, err)

	assert.Equal(t, "medium", res.SpamAnalysis.Risk)
	assert.Contains(t, res.SpamAnalysis.FoundWords, "free")
	assert.Contains(t, res.SpamAnalysis.FoundWords, "money")
	assert.Equal(t, 15, res.OverallScore)
	assert.Contains(t, res.Improvements, "Consider reducing spam trigger words")
}

func TestHighSpamRisk(t *testing.T) {
	res, err := Test(TestDTO{SubjectLine: "Free cash money urgent sale today"})
	require.NoError(t, err)
	assert.Equal(t, "high", res.SpamAnalysis.Risk)
	assert.Contains(t, res.Improvements, "Remove spam trigger words")
}

func TestCleanSubjectLine(t *testing.T) {
	res, err := Test(TestDTO{SubjectLine: "Your weekly product roadmap update", Industry: "saas"})
	require.NoError(t, err)

	assert.Equal(t, "low", res.SpamAnalysis.Risk)
	assert.Empty(t, res.SpamAnalysis.FoundWords)
	assert.Contains(t, res.Strengths, "Low spam risk - good deliverability")
	assert.GreaterOrEqual(t, res.OverallScore, 0)
	assert.LessOrEqual(t, res.OverallScore, 100)
}

func TestPredictedMetricsBounds(t *testing.T) {
	for _, subject := range []string{"Hi", "Your 5 point checklist for Q3 planning", "Free money now!!!"} {
		res, err := Test(TestDTO{SubjectLine: subject, Industry: "finance"})
		require.NoError(t, err)
		assert.LessOrEqual(t, res.PredictedMetrics.OpenRate, 40.0)
		assert.LessOrEqual(t, res.PredictedMetrics.ClickRate, 8.0)
		assert.GreaterOrEqual(t, res.PredictedMetrics.SpamScore, 0)
		assert.GreaterOrEqual(t, res.PredictedMetrics.MobileScore, 0)
		assert.LessOrEqual(t, res.PredictedMetrics.MobileScore, 100)
	}
}

func TestSuggestions(t *testing.T) {
	res, err := Test(TestDTO{SubjectLine: "A very long subject line that definitely exceeds forty characters in total"})
	require.NoError(t, err)

	require.NotEmpty(t, res.Suggestions)
	assert.LessOrEqual(t, len(res.Suggestions), 4)

	types := map[string]Suggestion{}
	for _, s := range res.Suggestions {
		types[s.Type] = s
	}
	require.Contains(t, types, "personalized")
	assert.Equal(t, "{name}, "+res.SubjectLine, types["personalized"].Text)
	require.Contains(t, types, "shortened")
	assert.Len(t, []rune(types["shortened"].Text), 40)
	require.Contains(t, types, "question")
}

func TestPersonalizationBonus(t *testing.T) {
	plain, err := Test(TestDTO{SubjectLine: "Here is the report for this week"})
	require.NoError(t, err)
	personalized, err := Test(TestDTO{SubjectLine: "{name}, here is the report now"})
	require.NoError(t, err)
	assert.Greater(t, personalized.OverallScore, plain.OverallScore)
	assert.Contains(t, personalized.Strengths, "Personalization increases engagement")
}

func TestDeterministic(t *testing.T) {
	dto := TestDTO{SubjectLine: "Your invoice is ready", Industry: "saas"}
	a, err := Test(dto)
	require.NoError(t, err)
	b, err := Test(dto)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmptySubjectLine(t *testing.T) {
	_, err := Test(TestDTO{SubjectLine: "  "})
	assert.ErrorIs(t, err, ErrEmptySubjectLine)
}
