package ai

import "errors"

var ErrNoProvider = errors.New("no AI provider is configured")

// GeneratePostsDTO is the AI post-generation request.
type GeneratePostsDTO struct {
	BrandName   string `json:"brand_name"`
	Topic       string `json:"topic" binding:"required"`
	BrandVoice  string `json:"brand_voice"`
	Platform    string `json:"platform" binding:"required"`
	UserContent string `json:"user_content"`
}

// HashtagsDTO is the trending-hashtags request.
type HashtagsDTO struct {
	Topic    string `json:"topic" binding:"required"`
	Platform string `json:"platform" binding:"required"`
	Industry string `json:"industry"`
}

// AnalyzeDTO is the post-analysis request.
type AnalyzeDTO struct {
	Content        string `json:"content" binding:"required"`
	Platform       string `json:"platform" binding:"required"`
	TargetAudience string `json:"target_audience"`
}

// PostVariation is one AI-drafted post.
type PostVariation struct {
	Content         string   `json:"content"`
	EngagementScore int      `json:"engagement_score"`
	Tone            string   `json:"tone"`
	Hashtags        []string `json:"hashtags"`
	Explanation     string   `json:"explanation"`
}

// PostsResult is the post-generation response.
type PostsResult struct {
	Variations      []PostVariation `json:"variations"`
	Hashtags        []string        `json:"hashtags"`
	Insights        string          `json:"insights"`
	Recommendations []string        `json:"recommendations,omitempty"`
	Platform        string          `json:"platform"`
	AIGenerated     bool            `json:"ai_generated"`
	GeneratedAt     string          `json:"generated_at"`
}

// HashtagGroups buckets hashtags by purpose.
type HashtagGroups struct {
	Popular []string `json:"popular"`
	Niche   []string `json:"niche"`
	Branded []string `json:"branded"`
}

// HashtagsResult is the trending-hashtags response.
type HashtagsResult struct {
	Hashtags             HashtagGroups `json:"hashtags"`
	Strategy             string        `json:"strategy"`
	BestPractices        []string      `json:"best_practices"`
	RecommendedCount     int           `json:"recommended_count"`
	PlatformSpecificTips string        `json:"platform_specific_tips"`
	Fallback             bool          `json:"fallback,omitempty"`
}

// PredictedMetrics are the projected reach figures in an analysis.
type PredictedMetrics struct {
	EstimatedReach    string `json:"estimated_reach"`
	EngagementRate    string `json:"engagement_rate"`
	ViralityPotential string `json:"virality_potential"`
}

// AnalysisResult is the post-analysis response.
type AnalysisResult struct {
	EngagementScore  int              `json:"engagement_score"`
	ReadabilityScore int              `json:"readability_score"`
	Strengths        []string         `json:"strengths"`
	Improvements     []string         `json:"improvements"`
	PredictedMetrics PredictedMetrics `json:"predicted_metrics"`
	Fallback         bool             `json:"fallback,omitempty"`
}
