package ai

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meritlives/tools-core/internal/modules/tools/socialmedia"
	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

// Service generates marketing content with the configured AI provider
// and degrades to the template engine when the provider is down. None
// of its operations return an error to callers.
type Service struct {
	client *Client
	logger *zap.Logger
}

func NewService(client *Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GeneratePosts drafts post variations with the AI provider, falling
// back to template generation when the call or parse fails.
func (s *Service) GeneratePosts(ctx context.Context, input GeneratePostsDTO) *PostsResult {
	prompt := buildPostsPrompt(input.BrandName, input.Topic, input.BrandVoice, input.Platform, input.UserContent)

	raw, err := s.client.complete(ctx, completion{
		System:      marketingSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   1500,
		Temperature: 0.8,
	})
	if err == nil {
		var parsed struct {
			Posts           []PostVariation `json:"posts"`
			Hashtags        []string        `json:"hashtags"`
			Insights        string          `json:"insights"`
			Recommendations []string        `json:"recommendations"`
		}
		if perr := unmarshalAIJSON(raw, &parsed); perr == nil && len(parsed.Posts) > 0 {
			return &PostsResult{
				Variations:      parsed.Posts,
				Hashtags:        parsed.Hashtags,
				Insights:        parsed.Insights,
				Recommendations: parsed.Recommendations,
				Platform:        input.Platform,
				AIGenerated:     true,
				GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
			}
		} else if perr != nil {
			err = perr
		}
	}

	s.logger.Warn("AI generation failed, falling back to rule-based", zap.Error(err))
	return s.fallbackPosts(input)
}

// TrendingHashtags asks the provider for categorized hashtags for a
// topic and platform.
func (s *Service) TrendingHashtags(ctx context.Context, input HashtagsDTO) *HashtagsResult {
	prompt := buildHashtagsPrompt(input.Topic, input.Platform, input.Industry)

	raw, err := s.client.complete(ctx, completion{
		System:      marketingSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   800,
		Temperature: 0.6,
	})
	if err == nil {
		var parsed HashtagsResult
		if perr := unmarshalAIJSON(raw, &parsed); perr == nil {
			return &parsed
		} else {
			err = perr
		}
	}

	s.logger.Warn("AI hashtag generation failed", zap.Error(err))
	return fallbackHashtags(input.Topic, input.Platform)
}

// AnalyzePost scores a drafted post for performance potential.
func (s *Service) AnalyzePost(ctx context.Context, input AnalyzeDTO) *AnalysisResult {
	prompt := buildAnalyzePrompt(input.Content, input.Platform, input.TargetAudience)

	raw, err := s.client.complete(ctx, completion{
		System:      marketingSystemPrompt,
		Prompt:      prompt,
		Temperature: 0.3,
	})
	if err == nil {
		var parsed AnalysisResult
		if perr := unmarshalAIJSON(raw, &parsed); perr == nil {
			return &parsed
		} else {
			err = perr
		}
	}

	s.logger.Warn("AI analysis failed", zap.Error(err))
	return fallbackAnalysis()
}

// fallbackPosts renders variations from the template engine so the
// endpoint still returns usable drafts without a provider.
func (s *Service) fallbackPosts(input GeneratePostsDTO) *PostsResult {
	result := &PostsResult{
		Variations:  []PostVariation{},
		Hashtags:    []string{},
		Insights:    "AI service temporarily unavailable. Using rule-based generation.",
		Platform:    input.Platform,
		AIGenerated: false,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// One post per platform entry, so repeat the platform for three drafts.
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	generated, err := socialmedia.Generate(socialmedia.GenerateDTO{
		Niche:        "custom",
		CustomNiche:  input.Topic,
		ContentType:  "promotional",
		BrandVoice:   input.BrandVoice,
		Platforms:    []string{platform, platform, platform},
		PostQuantity: 3,
	}, newSource(), time.Now())
	if err != nil {
		return result
	}

	for _, post := range generated.Posts {
		result.Variations = append(result.Variations, PostVariation{
			Content:         post.Content,
			EngagementScore: 50,
			Tone:            post.BrandVoice,
			Hashtags:        post.Hashtags,
			Explanation:     "Generated from the built-in template library",
		})
		if len(result.Hashtags) == 0 {
			result.Hashtags = post.Hashtags
		}
	}
	return result
}

func newSource() textkit.Source {
	return textkit.NewSource(uint64(time.Now().UnixNano()))
}

func fallbackHashtags(topic, platform string) *HashtagsResult {
	compact := strings.ReplaceAll(topic, " ", "")
	lower := strings.ToLower(compact)

	return &HashtagsResult{
		Hashtags: HashtagGroups{
			Popular: []string{"#" + compact, "#trending", "#viral", "#popular", "#hot"},
			Niche:   []string{"#" + lower + "lovers", "#" + lower + "community", "#expert", "#professional"},
			Branded: []string{"#brand", "#company", "#official"},
		},
		Strategy: "Use a mix of popular and niche hashtags. Start with 1-2 popular, 3-4 niche, and 1-2 branded hashtags.",
		BestPractices: []string{
			"Don't use more than 10 hashtags",
			"Place hashtags at the end of your post",
			"Research hashtag popularity before using",
			"Use platform-specific hashtag limits",
		},
		RecommendedCount:     8,
		PlatformSpecificTips: "On " + platform + ", use relevant and specific hashtags for better reach.",
		Fallback:             true,
	}
}

func fallbackAnalysis() *AnalysisResult {
	return &AnalysisResult{
		EngagementScore:  50,
		ReadabilityScore: 60,
		Strengths:        []string{"Clear message", "Relevant content"},
		Improvements:     []string{"Add more engaging elements", "Include call-to-action"},
		PredictedMetrics: PredictedMetrics{
			EstimatedReach:    "1000-5000",
			EngagementRate:    "3-5%",
			ViralityPotential: "medium",
		},
		Fallback: true,
	}
}
