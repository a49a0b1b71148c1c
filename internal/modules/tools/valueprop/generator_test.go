package valueprop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

func TestGenerate(t *testing.T) {
	res, err := Generate(GenerateDTO{
		ProductName:    "FlowDesk",
		TargetAudience: "remote teams",
		ProblemSolved:  "stay aligned across time zones",
		UniqueFeatures: "async standups",
		Competitors:    []string{"Slack", "Notion"},
	}, textkit.NewSource(42))
	require.NoError(t, err)

	assert.Equal(t, "Transform Your remote teams's Experience", res.Primary.Headline)
	assert.Equal(t, "FlowDesk helps remote teams stay aligned across time zones", res.Primary.Subheadline)
	assert.Equal(t, "Get Started Today", res.Primary.CTA)

	assert.Contains(t, res.Primary.ValueProps, "Solve stay aligned across time zones in minutes, not hours")
	assert.Contains(t, res.Primary.ValueProps, "Unique async standups that competitors don't offer")
	assert.Contains(t, res.Primary.ValueProps, "A clear alternative to Slack and Notion")
	assert.Contains(t, res.Primary.ValueProps, "Trusted by thousands of satisfied customers")

	require.Len(t, res.Variations, 2)
	for _, v := range res.Variations {
		assert.NotEmpty(t, v.Headline)
		assert.NotEmpty(t, v.Subheadline)
		assert.NotEmpty(t, v.CTA)
	}
}

func TestGenerateWithoutOptionalFields(t *testing.T) {
	res, err := Generate(GenerateDTO{
		ProductName:    "FlowDesk",
		TargetAudience: "freelancers",
		ProblemSolved:  "track invoices",
	}, textkit.NewSource(1))
	require.NoError(t, err)

	for _, p := range res.Primary.ValueProps {
		assert.NotContains(t, p, "Unique ")
		assert.NotContains(t, p, "alternative to")
	}
}

func TestGenerateMissingFields(t *testing.T) {
	_, err := Generate(GenerateDTO{ProductName: "FlowDesk"}, textkit.NewSource(1))
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestGenerateDeterministic(t *testing.T) {
	dto := GenerateDTO{ProductName: "FlowDesk", TargetAudience: "teams", ProblemSolved: "plan sprints"}
	a, err := Generate(dto, textkit.NewSource(3))
	require.NoError(t, err)
	b, err := Generate(dto, textkit.NewSource(3))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
