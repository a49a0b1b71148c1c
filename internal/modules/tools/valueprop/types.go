package valueprop

import "errors"

var ErrMissingFields = errors.New("product name, target audience and problem solved are required")

// GenerateDTO is the request body for value proposition generation.
type GenerateDTO struct {
	ProductName    string   `json:"product_name" binding:"required"`
	TargetAudience string   `json:"target_audience" binding:"required"`
	ProblemSolved  string   `json:"problem_solved" binding:"required"`
	UniqueFeatures string   `json:"unique_features"`
	Competitors    []string `json:"competitors"`
}

// Proposition is one complete value proposition variant.
type Proposition struct {
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	ValueProps  []string `json:"value_props"`
	CTA         string   `json:"cta"`
}

// Result holds the primary proposition plus alternates.
type Result struct {
	Primary    Proposition   `json:"primary"`
	Variations []Proposition `json:"variations"`
}
