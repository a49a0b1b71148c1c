package funnel

import "errors"

var (
	ErrMissingBusinessName = errors.New("Business name is required")
	ErrMissingAudience     = errors.New("Target audience is required")
	ErrMissingOffer        = errors.New("Primary offer is required")
)

// GenerateDTO is the funnel build request.
type GenerateDTO struct {
	BusinessName   string `json:"business_name" binding:"required"`
	BusinessType   string `json:"business_type"`
	TargetAudience string `json:"target_audience" binding:"required"`
	PrimaryOffer   string `json:"primary_offer" binding:"required"`
	FunnelGoal     string `json:"funnel_goal"`
	Budget         string `json:"budget"`
}

// StageItem is one tactic within a funnel stage.
type StageItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Tool is a recommended third-party tool for a stage.
type Tool struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Purpose string `json:"purpose"`
}

// Metrics holds the projected funnel performance figures, formatted for
// display.
type Metrics struct {
	TotalAudience  string `json:"total_audience"`
	ConversionRate string `json:"conversion_rate"`
	CostPerLead    string `json:"cost_per_lead"`
	ROI            string `json:"roi"`
}

// Result is the full generated funnel strategy.
type Result struct {
	Name            string                 `json:"name"`
	Type            string                 `json:"type"`
	Audience        string                 `json:"audience"`
	Offer           string                 `json:"offer"`
	BusinessType    string                 `json:"business_type"`
	Goal            string                 `json:"goal"`
	Budget          string                 `json:"budget"`
	Stages          map[string][]StageItem `json:"stages"`
	Metrics         Metrics                `json:"metrics"`
	Tools           map[string][]Tool      `json:"tools"`
	Recommendations []string               `json:"recommendations"`
	NextSteps       []string               `json:"next_steps"`
}
