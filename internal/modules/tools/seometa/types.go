package seometa

import "errors"

var ErrMissingFields = errors.New("page title and primary keyword are required")

// GenerateDTO is the request body for meta tag generation.
type GenerateDTO struct {
	PageTitle         string   `json:"page_title" binding:"required"`
	PageContent       string   `json:"page_content"`
	PrimaryKeyword    string   `json:"primary_keyword" binding:"required"`
	ContentType       string   `json:"content_type"`
	Tone              string   `json:"tone"`
	TargetAudience    string   `json:"target_audience"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	Competitors       []string `json:"competitors"`
}

// Variation is one generated title/description pair.
type Variation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TitleLength int    `json:"title_length"`
	DescLength  int    `json:"desc_length"`
}

// AnalysisDetails are the human-readable notes behind each component score.
type AnalysisDetails struct {
	Keyword     string `json:"keyword"`
	Length      string `json:"length"`
	Engagement  string `json:"engagement"`
	Readability string `json:"readability"`
}

// Analysis scores the first variation across four SEO dimensions.
type Analysis struct {
	OverallScore     int             `json:"overall_score"`
	KeywordScore     int             `json:"keyword_score"`
	LengthScore      int             `json:"length_score"`
	EngagementScore  int             `json:"engagement_score"`
	ReadabilityScore int             `json:"readability_score"`
	Details          AnalysisDetails `json:"details"`
}

// Metadata is the recommended tag pair.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Result is the full meta generation report.
type Result struct {
	ContentType        string      `json:"content_type"`
	Variations         []Variation `json:"variations"`
	KeywordSuggestions []string    `json:"keyword_suggestions"`
	Analysis           Analysis    `json:"analysis"`
	URL                string      `json:"url"`
	Metadata           Metadata    `json:"metadata"`
}
