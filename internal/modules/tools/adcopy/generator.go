package adcopy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

type platformConfig struct {
	maxTitleLength int
	maxDescLength  int
	urlRequired    bool
	platformName   string
}

var platformConfigs = map[string]platformConfig{
	"google":    {maxTitleLength: 30, maxDescLength: 90, urlRequired: true, platformName: "Google Ads"},
	"facebook":  {maxTitleLength: 40, maxDescLength: 125, urlRequired: true, platformName: "Facebook"},
	"instagram": {maxTitleLength: 150, maxDescLength: 125, urlRequired: false, platformName: "Instagram"},
	"twitter":   {maxTitleLength: 280, maxDescLength: 280, urlRequired: false, platformName: "Twitter/X"},
	"linkedin":  {maxTitleLength: 150, maxDescLength: 600, urlRequired: true, platformName: "LinkedIn"},
	"tiktok":    {maxTitleLength: 100, maxDescLength: 150, urlRequired: false, platformName: "TikTok"},
}

var ctaOptions = textkit.Table{
	"buy-now":     {"Purchase Now", "Acquire Today", "Secure Your Order"},
	"learn-more":  {"Learn More", "Discover Details", "Explore Features"},
	"sign-up":     {"Register Now", "Create Account", "Join Today"},
	"get-started": {"Get Started", "Begin Journey", "Start Today"},
	"shop-now":    {"Shop Now", "Browse Collection", "View Products"},
	"download":    {"Download Now", "Get Application", "Install Software"},
}

type toneTemplate struct {
	adjectives []string
	phrases    []string
	powerWords []string
}

var toneTemplates = map[string]toneTemplate{
	"professional": {
		adjectives: []string{"enterprise-grade", "premium", "advanced", "sophisticated", "comprehensive"},
		phrases:    []string{"Maximize efficiency", "Enterprise-ready solution", "Professional-grade performance"},
		powerWords: []string{"Optimize", "Streamline", "Enhance", "Transform", "Accelerate"},
	},
	"casual": {
		adjectives: []string{"intuitive", "streamlined", "user-friendly", "efficient", "reliable"},
		phrases:    []string{"Experience the difference", "Discover new possibilities", "Simplify your workflow"},
		powerWords: []string{"Discover", "Experience", "Simplify", "Elevate", "Transform"},
	},
	"urgent": {
		adjectives: []string{"limited-time", "exclusive", "time-sensitive", "priority", "immediate"},
		phrases:    []string{"Limited availability", "Exclusive opportunity", "Time-sensitive offer"},
		powerWords: []string{"Act", "Secure", "Reserve", "Access", "Claim"},
	},
	"authoritative": {
		adjectives: []string{"industry-leading", "expert", "premier", "definitive", "comprehensive"},
		phrases:    []string{"Industry-best performance", "Expert-crafted solution", "Premier quality standards"},
		powerWords: []string{"Lead", "Dominate", "Excel", "Master", "Achieve"},
	},
	"inspirational": {
		adjectives: []string{"transformative", "empowering", "visionary", "innovative", "progressive"},
		phrases:    []string{"Unlock potential", "Achieve excellence", "Drive innovation"},
		powerWords: []string{"Inspire", "Empower", "Transform", "Elevate", "Achieve"},
	},
}

func pick(src textkit.Source, items []string) string {
	return items[src.IntN(len(items))]
}

func generateTitle(productName string, tt toneTemplate, cfg platformConfig, src textkit.Source) string {
	templates := []string{
		productName + ": " + pick(src, tt.phrases),
		pick(src, tt.adjectives) + " " + productName + " Solution",
		pick(src, tt.powerWords) + " Your Results with " + productName,
		productName + " - " + pick(src, tt.adjectives) + " Performance",
		"Achieve " + pick(src, tt.powerWords) + " with " + productName,
	}
	return textkit.Truncate(pick(src, templates), cfg.maxTitleLength)
}

func generateDescription(productDesc, productName string, tt toneTemplate, ctaPhrases []string, cfg platformConfig, src textkit.Source) string {
	cta := pick(src, ctaPhrases)
	templates := []string{
		fmt.Sprintf("%s. %s. %s to %s your outcomes.", productDesc, pick(src, tt.phrases), cta, strings.ToLower(pick(src, tt.powerWords))),
		fmt.Sprintf("Discover our %s solution designed for optimal performance. %s. %s for superior results.", pick(src, tt.adjectives), productDesc, cta),
		fmt.Sprintf("%s with our comprehensive %s platform. %s. %s to begin your transformation.", pick(src, tt.phrases), productName, productDesc, cta),
		fmt.Sprintf("Experience %s quality with %s. %s. %s to access premium features.", pick(src, tt.adjectives), productName, productDesc, cta),
	}
	return textkit.Truncate(pick(src, templates), cfg.maxDescLength)
}

func keywordOr(keywords []string, i int, fallback string) string {
	if i < len(keywords) && keywords[i] != "" {
		return keywords[i]
	}
	return fallback
}

func generateVariation(index int, productName string, tt toneTemplate, ctaPhrases []string, keywords []string, audience string, src textkit.Source) string {
	cta := pick(src, ctaPhrases)
	switch index {
	case 1:
		if audience == "" {
			audience = "professionals"
		}
		return fmt.Sprintf("Transform your workflow with our %s %s solution.\n\nDesigned specifically for %s, this platform delivers measurable results and exceptional value.\n\n%s to unlock your potential.",
			pick(src, tt.adjectives), productName, strings.ToLower(audience), cta)
	case 2:
		return fmt.Sprintf("Addressing critical challenges for modern professionals.\n\n%s provides the %s solution you need to %s outcomes and drive success.\n\n%s to implement this strategic advantage.",
			productName, pick(src, tt.adjectives), strings.ToLower(pick(src, tt.powerWords)), cta)
	default:
		return fmt.Sprintf("%s your performance with %s.\n\nKey features include:\n• %s\n• %s\n• %s\n\n%s to experience the difference.",
			pick(src, tt.powerWords), productName,
			keywordOr(keywords, 0, "Advanced functionality"),
			keywordOr(keywords, 1, "Premium quality"),
			keywordOr(keywords, 2, "Reliable performance"),
			cta)
	}
}

var hashtagStripRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

func generateHashtags(productName string, keywords []string) []string {
	raw := []string{
		strings.ReplaceAll(productName, " ", ""),
		"Business",
		"Solution",
		"Professional",
	}
	n := len(keywords)
	if n > 3 {
		n = 3
	}
	for _, k := range keywords[:n] {
		raw = append(raw, strings.ReplaceAll(k, " ", ""))
	}
	raw = append(raw, "Innovation", "Technology", "Growth", "Success")

	seen := map[string]bool{}
	out := []string{}
	for _, tag := range raw {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, "#"+hashtagStripRe.ReplaceAllString(tag, ""))
		if len(out) == 8 {
			break
		}
	}
	return out
}

var urlStripRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

func generateURL(productName string) string {
	base := "www." + strings.ReplaceAll(strings.ToLower(productName), " ", "") + ".com"
	return urlStripRe.ReplaceAllString(base, "")
}

// Generate renders the title, description, three long-form variations, and
// hashtag set for one ad platform.
func Generate(input GenerateDTO, src textkit.Source) (*Result, error) {
	if strings.TrimSpace(input.ProductName) == "" || strings.TrimSpace(input.ProductDescription) == "" {
		return nil, ErrMissingProduct
	}

	cfg, ok := platformConfigs[input.Platform]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, input.Platform)
	}
	tt, ok := toneTemplates[input.Tone]
	if !ok {
		tt = toneTemplates["professional"]
	}
	ctaPhrases := ctaOptions.EntriesOr(input.CTA, "learn-more")

	variations := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		variations = append(variations, generateVariation(i, input.ProductName, tt, ctaPhrases, input.Keywords, input.TargetAudience, src))
	}

	return &Result{
		Platform:     input.Platform,
		PlatformName: cfg.platformName,
		Title:        generateTitle(input.ProductName, tt, cfg, src),
		Description:  generateDescription(input.ProductDescription, input.ProductName, tt, ctaPhrases, cfg, src),
		Variations:   variations,
		Hashtags:     generateHashtags(input.ProductName, input.Keywords),
		URL:          generateURL(input.ProductName),
	}, nil
}
