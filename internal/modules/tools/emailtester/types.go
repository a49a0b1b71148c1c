package emailtester

import "errors"

var ErrEmptySubjectLine = errors.New("subject line is required")

// TestDTO is the request body for a subject line test.
type TestDTO struct {
	SubjectLine string `json:"subject_line" binding:"required"`
	EmailType   string `json:"email_type"`
	Audience    string `json:"audience"`
	Industry    string `json:"industry"`
	SenderName  string `json:"sender_name"`
}

// SpamAnalysis reports the spam trigger words found and the resulting risk.
type SpamAnalysis struct {
	FoundWords []string `json:"found_words"`
	Count      int      `json:"count"`
	Risk       string   `json:"risk"`
}

// PredictedMetrics are the open/click projections against the industry benchmark.
type PredictedMetrics struct {
	OpenRate    float64 `json:"open_rate"`
	ClickRate   float64 `json:"click_rate"`
	SpamScore   int     `json:"spam_score"`
	MobileScore int     `json:"mobile_score"`
}

// Suggestion is a rewritten subject line variant.
type Suggestion struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
	Type  string `json:"type"`
}

// Result is the full subject line report.
type Result struct {
	SubjectLine      string           `json:"subject_line"`
	SenderName       string           `json:"sender_name"`
	EmailType        string           `json:"email_type"`
	Audience         string           `json:"audience"`
	Industry         string           `json:"industry"`
	CharCount        int              `json:"char_count"`
	WordCount        int              `json:"word_count"`
	OverallScore     int              `json:"overall_score"`
	SpamAnalysis     SpamAnalysis     `json:"spam_analysis"`
	PredictedMetrics PredictedMetrics `json:"predicted_metrics"`
	Strengths        []string         `json:"strengths"`
	Improvements     []string         `json:"improvements"`
	Suggestions      []Suggestion     `json:"suggestions"`
}
