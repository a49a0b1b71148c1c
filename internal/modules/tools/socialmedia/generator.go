package socialmedia

import (
	"fmt"
	"strings"
	"time"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

// PlatformConfig describes one supported network's posting constraints.
type PlatformConfig struct {
	Name          string
	MaxLength     int
	OptimalLength int
	MaxHashtags   int
	EmojiSupport  bool
}

var platformConfigs = map[string]PlatformConfig{
	"instagram": {Name: "Instagram", MaxLength: 2200, OptimalLength: 125, MaxHashtags: 30, EmojiSupport: true},
	"tiktok":    {Name: "TikTok", MaxLength: 150, OptimalLength: 100, MaxHashtags: 10, EmojiSupport: true},
	"twitter":   {Name: "Twitter", MaxLength: 280, OptimalLength: 240, MaxHashtags: 3, EmojiSupport: true},
	"linkedin":  {Name: "LinkedIn", MaxLength: 3000, OptimalLength: 150, MaxHashtags: 5, EmojiSupport: false},
	"facebook":  {Name: "Facebook", MaxLength: 63206, OptimalLength: 80, MaxHashtags: 3, EmojiSupport: true},
}

// PlatformFor exposes the config table for other modules.
func PlatformFor(platform string) (PlatformConfig, bool) {
	cfg, ok := platformConfigs[platform]
	return cfg, ok
}

var starters = textkit.Table{
	"educational": {
		"📚 Pro Tip:",
		"💡 Did you know?",
		"🎓 Learn how to",
		"✨ Master the art of",
		"🔍 Discover the secret to",
	},
	"promotional": {
		"🎉 Exciting news!",
		"🔥 Limited time offer:",
		"⭐ Special announcement:",
		"🎁 Don't miss out:",
		"💥 New arrival:",
	},
	"entertaining": {
		"😂 You won't believe this:",
		"🤣 Real talk:",
		"😅 Can we just admit:",
		"🎭 Plot twist:",
		"🙃 Hot take:",
	},
	"inspirational": {
		"✨ Remember:",
		"🌟 Believe this:",
		"💫 Never forget:",
		"🦋 Truth:",
		"🌈 Today's reminder:",
	},
	"news": {
		"📰 Breaking:",
		"📢 Update:",
		"🔔 News flash:",
		"⚡ Just announced:",
		"📣 Industry update:",
	},
}

var callToActions = textkit.Table{
	"educational": {
		"Save this for later!",
		"Share with someone who needs this",
		"What would you add to this list?",
		"Try this today and let us know how it goes",
	},
	"promotional": {
		"Shop now - link in bio!",
		"Limited quantities available",
		"Get yours before it's gone",
		"Click the link to learn more",
	},
	"entertaining": {
		"Tag someone who needs to see this",
		"Double tap if you agree",
		"Comment your version below",
		"Share this with your squad",
	},
	"inspirational": {
		"Share to inspire someone today",
		"Save this for when you need it",
		"Pass this on to uplift others",
		"What inspires you? Let us know",
	},
	"news": {
		"What are your thoughts?",
		"Stay tuned for more updates",
		"Follow for the latest news",
		"Share your perspective below",
	},
}

var nicheKeywords = map[string][]string{
	"technology": {"innovation", "digital", "tech", "AI", "automation", "software"},
	"fashion":    {"style", "trending", "collection", "designer", "fashion", "outfit"},
	"fitness":    {"wellness", "health", "workout", "nutrition", "training", "goals"},
	"food":       {"delicious", "recipe", "flavor", "cuisine", "chef", "taste"},
	"education":  {"learning", "knowledge", "skills", "growth", "teaching", "mastery"},
	"finance":    {"investment", "wealth", "financial", "money", "portfolio", "returns"},
	"travel":     {"adventure", "destination", "explore", "journey", "wanderlust", "discover"},
	"realestate": {"property", "investment", "location", "market", "home", "luxury"},
	"ecommerce":  {"shop", "deals", "products", "store", "shopping", "discount"},
}

var generalHashtags = []string{"#viral", "#trending", "#fyp", "#explore", "#motivation"}

// Hashtags builds up to count tags from the niche vocabulary, the user's
// interests, and a general trending pool, deduplicated in that order.
func Hashtags(niche string, interests []string, count int) []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}

	for _, kw := range nicheKeywords[niche] {
		add("#" + strings.ReplaceAll(kw, " ", ""))
	}
	for _, interest := range interests {
		add("#" + strings.ReplaceAll(interest, " ", ""))
	}
	for _, tag := range generalHashtags {
		if len(out) >= count+3 {
			break
		}
		add(tag)
	}

	if len(out) > count {
		out = out[:count]
	}
	return out
}

func buildContent(platform, nicheDisplay, contentType string, src textkit.Source) (string, error) {
	cfg, ok := platformConfigs[platform]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
	}

	starter, err := textkit.PickFrom(src, starters, contentType)
	if err != nil {
		return "", err
	}
	cta, err := textkit.PickFrom(src, callToActions, contentType)
	if err != nil {
		return "", err
	}

	var content string
	switch platform {
	case "instagram":
		content = fmt.Sprintf("%s\n\nExploring the world of %s. Here's what you need to know:\n\n✅ Key insights that matter\n✅ Proven strategies that work\n✅ Real results you can achieve\n\n%s", starter, nicheDisplay, cta)
	case "tiktok":
		content = fmt.Sprintf("%s %s edition! Quick tips inside 💯\n\n%s", starter, nicheDisplay, cta)
	case "twitter":
		content = fmt.Sprintf("%s %s insight that changed everything:\n\n[Insert key takeaway here]\n\n%s", starter, nicheDisplay, cta)
	case "linkedin":
		content = fmt.Sprintf("%s\n\nIn today's %s landscape, understanding these key principles is crucial:\n\n1. Strategic approach to growth\n2. Leveraging innovative solutions\n3. Building sustainable success\n\n%s", starter, nicheDisplay, cta)
	case "facebook":
		content = fmt.Sprintf("%s\n\nWe're excited to share insights about %s!\n\nOur community has been growing, and we wanted to take a moment to connect with you.\n\n%s", starter, nicheDisplay, cta)
	}

	return textkit.Truncate(content, cfg.MaxLength), nil
}

func recommendations(interests []string) []Recommendation {
	out := []Recommendation{
		{
			Type:        "timing",
			Title:       "Optimal Posting Times",
			Description: "Based on your audience, post between 12-3 PM or 7-9 PM for maximum engagement",
		},
	}
	if len(interests) > 0 {
		out = append(out, Recommendation{
			Type:        "hashtags",
			Title:       "Hashtag Strategy",
			Description: fmt.Sprintf("Mix popular and niche hashtags. Your interests (%s) are trending", strings.Join(interests, ", ")),
		})
	}
	out = append(out, Recommendation{
		Type:        "content",
		Title:       "Content Mix",
		Description: "Vary your content types. Try carousel posts, videos, and stories for better reach",
	})
	return out
}

// Generate renders one post per requested platform, trimmed to the quantity
// cap. Also serves as the deterministic fallback when AI generation fails.
func Generate(input GenerateDTO, src textkit.Source, now time.Time) (*Result, error) {
	if strings.TrimSpace(input.Niche) == "" {
		return nil, ErrMissingNiche
	}
	if input.Niche == "custom" && strings.TrimSpace(input.CustomNiche) == "" {
		return nil, ErrMissingCustomNiche
	}
	if len(input.Platforms) == 0 {
		return nil, ErrNoPlatforms
	}

	contentType := input.ContentType
	if !starters.Has(contentType) {
		return nil, fmt.Errorf("%w: content type %q", textkit.ErrUnknownCategoryKey, contentType)
	}
	nicheDisplay := input.CustomNiche
	if nicheDisplay == "" {
		nicheDisplay = input.Niche
	}

	posts := make([]Post, 0, len(input.Platforms))
	for _, platform := range input.Platforms {
		cfg, ok := platformConfigs[platform]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
		}

		content, err := buildContent(platform, nicheDisplay, contentType, src)
		if err != nil {
			return nil, err
		}

		posts = append(posts, Post{
			Platform:     platform,
			PlatformName: cfg.Name,
			Content:      content,
			Hashtags:     Hashtags(input.Niche, input.Interests, cfg.MaxHashtags),
			ContentType:  contentType,
			BrandVoice:   input.BrandVoice,
			TargetAudience: TargetAudience{
				AgeRange:  input.AgeRange,
				Interests: input.Interests,
			},
			Metrics: PostMetrics{
				EstimatedReach:          src.IntN(5000) + 2000,
				EstimatedEngagement:     src.IntN(1000) + 500,
				EstimatedEngagementRate: fmt.Sprintf("%.2f%%", float64(src.IntN(500))/100+2),
			},
			Posted:    input.AutoPost,
			CreatedAt: now.UTC().Format(time.RFC3339),
		})
	}

	if input.PostQuantity > 0 && len(posts) > input.PostQuantity {
		posts = posts[:input.PostQuantity]
	}

	return &Result{
		Posts: posts,
		Summary: Summary{
			TotalPosts:  len(posts),
			Platforms:   input.Platforms,
			Niche:       nicheDisplay,
			ContentType: contentType,
			BrandVoice:  input.BrandVoice,
			AutoPosted:  input.AutoPost,
		},
		Recommendations: recommendations(input.Interests),
	}, nil
}
