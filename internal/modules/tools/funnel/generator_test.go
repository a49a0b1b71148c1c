package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	res, err := Generate(GenerateDTO{
		BusinessName:   "Acme",
		BusinessType:   "saas",
		TargetAudience: "startup founders",
		PrimaryOffer:   "14-day free trial",
		FunnelGoal:     "app-signups",
		Budget:         "5000",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme SaaS Conversion Funnel", res.Name)
	assert.Equal(t, "App Sign-ups", res.Type)
	assert.Equal(t, "startup founders", res.Audience)
	assert.Equal(t, "14-day free trial", res.Offer)

	require.Len(t, res.Stages, 4)
	for _, stage := range []string{"awareness", "interest", "decision", "action"} {
		assert.Len(t, res.Stages[stage], 3, stage)
		assert.Len(t, res.Tools[stage], 4, stage)
	}
	assert.Equal(t, "Trial", res.Stages["interest"][0].Type)

	assert.Equal(t, "25,000", res.Metrics.TotalAudience)
	assert.Equal(t, "7.2%", res.Metrics.ConversionRate)
	assert.Equal(t, "$4.40", res.Metrics.CostPerLead)
	assert.Equal(t, "675%", res.Metrics.ROI)

	assert.Contains(t, res.Recommendations, "Offer a free trial to reduce barriers to entry")
	assert.Len(t, res.NextSteps, 6)
}

func TestGenerateDefaults(t *testing.T) {
	res, err := Generate(GenerateDTO{
		BusinessName:   "Bright Studio",
		TargetAudience: "local businesses",
		PrimaryOffer:   "brand refresh package",
	})
	require.NoError(t, err)

	// Unknown business type falls back to the service template, and a
	// missing budget is treated as $1,000.
	assert.Equal(t, "Bright Studio Service Business Funnel", res.Name)
	assert.Equal(t, "2,000", res.Metrics.TotalAudience)
	assert.Equal(t, "12.5%", res.Metrics.ConversionRate)
	assert.Equal(t, "$45.00", res.Metrics.CostPerLead)
	assert.Equal(t, "308%", res.Metrics.ROI)
	assert.Contains(t, res.Recommendations, "Offer free consultations or audits")
}

func TestGenerateUnknownGoalPassedThrough(t *testing.T) {
	res, err := Generate(GenerateDTO{
		BusinessName:   "Acme",
		TargetAudience: "anyone",
		PrimaryOffer:   "something",
		FunnelGoal:     "brand-awareness",
	})
	require.NoError(t, err)
	assert.Equal(t, "brand-awareness", res.Type)
}

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(GenerateDTO{TargetAudience: "x", PrimaryOffer: "y"})
	assert.ErrorIs(t, err, ErrMissingBusinessName)

	_, err = Generate(GenerateDTO{BusinessName: "x", PrimaryOffer: "y"})
	assert.ErrorIs(t, err, ErrMissingAudience)

	_, err = Generate(GenerateDTO{BusinessName: "x", TargetAudience: "y", PrimaryOffer: "  "})
	assert.ErrorIs(t, err, ErrMissingOffer)
}

func TestParseBudget(t *testing.T) {
	assert.Equal(t, 5000, parseBudget("5000"))
	assert.Equal(t, 2500, parseBudget("2500-5000"))
	assert.Equal(t, 2500, parseBudget(" 2500/mo "))
	assert.Equal(t, 1000, parseBudget("about five grand"))
	assert.Equal(t, 1000, parseBudget(""))
	assert.Equal(t, 1000, parseBudget("0"))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "500", groupThousands(500))
	assert.Equal(t, "1,500", groupThousands(1500))
	assert.Equal(t, "1,234,567", groupThousands(1234567))
}
