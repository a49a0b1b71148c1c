package socialmedia

import "errors"

var (
	ErrMissingNiche       = errors.New("niche is required")
	ErrMissingCustomNiche = errors.New("custom niche description is required")
	ErrNoPlatforms        = errors.New("at least one platform must be selected")
	ErrUnknownPlatform    = errors.New("unknown platform")
)

// GenerateDTO is the request body for social media post generation.
type GenerateDTO struct {
	Niche        string   `json:"niche" binding:"required"`
	CustomNiche  string   `json:"custom_niche"`
	ContentType  string   `json:"content_type"`
	BrandVoice   string   `json:"brand_voice"`
	AgeRange     string   `json:"age_range"`
	Interests    []string `json:"interests"`
	PostQuantity int      `json:"post_quantity"`
	AutoPost     bool     `json:"auto_post"`
	Platforms    []string `json:"platforms" binding:"required"`
}

// TargetAudience echoes the audience parameters onto each post.
type TargetAudience struct {
	AgeRange  string   `json:"age_range"`
	Interests []string `json:"interests"`
}

// PostMetrics are the projected reach numbers for a generated post.
type PostMetrics struct {
	EstimatedReach          int    `json:"estimated_reach"`
	EstimatedEngagement     int    `json:"estimated_engagement"`
	EstimatedEngagementRate string `json:"estimated_engagement_rate"`
}

// Post is one generated platform-specific post.
type Post struct {
	Platform       string         `json:"platform"`
	PlatformName   string         `json:"platform_name"`
	Content        string         `json:"content"`
	Hashtags       []string       `json:"hashtags"`
	ContentType    string         `json:"content_type"`
	BrandVoice     string         `json:"brand_voice"`
	TargetAudience TargetAudience `json:"target_audience"`
	Metrics        PostMetrics    `json:"metrics"`
	Posted         bool           `json:"posted"`
	CreatedAt      string         `json:"created_at"`
}

// Summary aggregates the generation run.
type Summary struct {
	TotalPosts  int      `json:"total_posts"`
	Platforms   []string `json:"platforms"`
	Niche       string   `json:"niche"`
	ContentType string   `json:"content_type"`
	BrandVoice  string   `json:"brand_voice"`
	AutoPosted  bool     `json:"auto_posted"`
}

// Recommendation is one strategy tip attached to the result.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Result is the full generation output.
type Result struct {
	Posts           []Post           `json:"posts"`
	Summary         Summary          `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
	AIGenerated     bool             `json:"ai_generated"`
}
