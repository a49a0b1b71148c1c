package valueprop

import (
	"fmt"
	"strings"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

var headlineTemplates = []string{
	"Transform Your {audience}'s Experience",
	"The Smarter Way for {audience} to {problem}",
	"{product}: Built for {audience}",
	"Stop Struggling with {problem}",
}

var subheadlineTemplates = []string{
	"{product} helps {audience} {problem}",
	"{product} gives {audience} everything they need to {problem}, without the usual overhead",
	"Join the {audience} who already rely on {product} to {problem}",
}

var ctas = []string{
	"Get Started Today",
	"Start Your Free Trial",
	"See It in Action",
	"Book a Demo",
}

func pick(src textkit.Source, items []string) string {
	return items[src.IntN(len(items))]
}

func buildProposition(input GenerateDTO, src textkit.Source) Proposition {
	bindings := map[string]string{
		"{product}":  input.ProductName,
		"{audience}": input.TargetAudience,
		"{problem}":  input.ProblemSolved,
	}

	props := []string{
		fmt.Sprintf("Solve %s in minutes, not hours", input.ProblemSolved),
	}
	if input.UniqueFeatures != "" {
		props = append(props, fmt.Sprintf("Unique %s that competitors don't offer", input.UniqueFeatures))
	}
	if len(input.Competitors) > 0 {
		props = append(props, fmt.Sprintf("A clear alternative to %s", strings.Join(input.Competitors, " and ")))
	}
	props = append(props, "Trusted by thousands of satisfied customers")

	return Proposition{
		Headline:    textkit.Render(pick(src, headlineTemplates), bindings),
		Subheadline: textkit.Render(pick(src, subheadlineTemplates), bindings),
		ValueProps:  props,
		CTA:         pick(src, ctas),
	}
}

// Generate produces a primary value proposition plus two alternates. The
// primary always uses the canonical headline and CTA so repeat runs lead
// with a stable message.
func Generate(input GenerateDTO, src textkit.Source) (*Result, error) {
	if strings.TrimSpace(input.ProductName) == "" ||
		strings.TrimSpace(input.TargetAudience) == "" ||
		strings.TrimSpace(input.ProblemSolved) == "" {
		return nil, ErrMissingFields
	}

	primary := buildProposition(input, src)
	primary.Headline = textkit.Render(headlineTemplates[0], map[string]string{"{audience}": input.TargetAudience})
	primary.Subheadline = fmt.Sprintf("%s helps %s %s", input.ProductName, input.TargetAudience, input.ProblemSolved)
	primary.CTA = ctas[0]

	variations := []Proposition{
		buildProposition(input, src),
		buildProposition(input, src),
	}

	return &Result{Primary: primary, Variations: variations}, nil
}
