package adcopy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

func TestGenerate(t *testing.T) {
	res, err := Generate(GenerateDTO{
		ProductName:        "FlowDesk",
		ProductDescription: "An all-in-one workspace for remote teams",
		Platform:           "google",
		Tone:               "professional",
		TargetAudience:     "Product Managers",
		CTA:                "get-started",
		Keywords:           []string{"task tracking", "team chat"},
	}, textkit.NewSource(42))
	require.NoError(t, err)

	assert.Equal(t, "google", res.Platform)
	assert.Equal(t, "Google Ads", res.PlatformName)
	assert.LessOrEqual(t, len([]rune(res.Title)), 30)
	assert.LessOrEqual(t, len([]rune(res.Description)), 90)
	require.Len(t, res.Variations, 3)
	assert.Contains(t, res.Variations[0], "task tracking")
	assert.Contains(t, res.Variations[1], "product managers")
	assert.Equal(t, "www.flowdesk.com", res.URL)
}

func TestGenerateHashtags(t *testing.T) {
	tags := generateHashtags("Flow Desk", []string{"task tracking", "team chat", "kanban", "extra"})
	assert.LessOrEqual(t, len(tags), 8)
	assert.Equal(t, "#FlowDesk", tags[0])
	assert.Contains(t, tags, "#tasktracking")
	for _, tag := range tags {
		assert.True(t, strings.HasPrefix(tag, "#"))
		assert.NotContains(t, tag[1:], "#")
		assert.NotContains(t, tag, " ")
	}
}

func TestGenerateKeywordFallbacks(t *testing.T) {
	res, err := Generate(GenerateDTO{
		ProductName:        "FlowDesk",
		ProductDescription: "Workspace software",
		Platform:           "linkedin",
	}, textkit.NewSource(5))
	require.NoError(t, err)
	assert.Contains(t, res.Variations[0], "Advanced functionality")
	assert.Contains(t, res.Variations[0], "Premium quality")
	assert.Contains(t, res.Variations[0], "Reliable performance")
}

func TestGenerateUnknownPlatform(t *testing.T) {
	_, err := Generate(GenerateDTO{
		ProductName:        "FlowDesk",
		ProductDescription: "Workspace software",
		Platform:           "billboard",
	}, textkit.NewSource(1))
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestGenerateMissingProduct(t *testing.T) {
	_, err := Generate(GenerateDTO{Platform: "google"}, textkit.NewSource(1))
	assert.ErrorIs(t, err, ErrMissingProduct)
}

func TestGenerateDeterministic(t *testing.T) {
	dto := GenerateDTO{ProductName: "FlowDesk", ProductDescription: "Workspace software", Platform: "facebook"}
	a, err := Generate(dto, textkit.NewSource(7))
	require.NoError(t, err)
	b, err := Generate(dto, textkit.NewSource(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateURL(t *testing.T) {
	assert.Equal(t, "www.flowdesk.com", generateURL("Flow Desk"))
	assert.Equal(t, "www.acme2.com", generateURL("Acme 2!"))
}
