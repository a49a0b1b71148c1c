package headline

import "errors"

var ErrEmptyHeadline = errors.New("headline is required")

// AnalyzeDTO is the request body for a headline analysis.
type AnalyzeDTO struct {
	Headline       string `json:"headline" binding:"required"`
	ContentType    string `json:"content_type"`
	TargetAudience string `json:"target_audience"`
	Tone           string `json:"tone"`
	Platform       string `json:"platform"`
}

// Metrics are the raw measurements behind the score.
type Metrics struct {
	WordCount        int `json:"word_count"`
	CharCount        int `json:"char_count"`
	SentimentScore   int `json:"sentiment_score"`
	ReadabilityScore int `json:"readability_score"`
}

// Alternative is a rewritten headline with its own score.
type Alternative struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// Flags are the boolean signals surfaced alongside the score.
type Flags struct {
	HasPowerWords   bool `json:"has_power_words"`
	HasNumbers      bool `json:"has_numbers"`
	IsQuestion      bool `json:"is_question"`
	AddressesReader bool `json:"addresses_reader"`
	OptimalLength   bool `json:"optimal_length"`
	OptimalChars    bool `json:"optimal_chars"`
}

// Result is the full analysis report.
type Result struct {
	OverallScore int           `json:"overall_score"`
	Metrics      Metrics       `json:"metrics"`
	Strengths    []string      `json:"strengths"`
	Improvements []string      `json:"improvements"`
	Alternatives []Alternative `json:"alternatives"`
	Analysis     Flags         `json:"analysis"`
}
