package adcopy

import "errors"

var (
	ErrMissingProduct  = errors.New("product name and description are required")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// GenerateDTO is the request body for ad copy generation.
type GenerateDTO struct {
	ProductName        string   `json:"product_name" binding:"required"`
	ProductDescription string   `json:"product_description" binding:"required"`
	Platform           string   `json:"platform" binding:"required"`
	Tone               string   `json:"tone"`
	TargetAudience     string   `json:"target_audience"`
	CTA                string   `json:"cta"`
	Keywords           []string `json:"keywords"`
}

// Result is the generated ad copy for one platform.
type Result struct {
	Platform     string   `json:"platform"`
	PlatformName string   `json:"platform_name"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Variations   []string `json:"variations"`
	Hashtags     []string `json:"hashtags"`
	URL          string   `json:"url"`
}
