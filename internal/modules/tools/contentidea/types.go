package contentidea

import "errors"

var ErrMissingNiche = errors.New("niche is required")

// GenerateDTO is the request body for content idea generation.
type GenerateDTO struct {
	Niche          string   `json:"niche" binding:"required"`
	TargetAudience string   `json:"target_audience"`
	ContentType    string   `json:"content_type"`
	ContentFormat  string   `json:"content_format"`
	Tone           string   `json:"tone"`
	IdeaCount      int      `json:"idea_count"`
	Keywords       []string `json:"keywords"`
	Goal           string   `json:"goal"`
}

// Idea is one generated content idea.
type Idea struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Format      string   `json:"format"`
	Tags        []string `json:"tags"`
}

// CalendarEntry schedules one idea on the publishing calendar.
type CalendarEntry struct {
	Date string `json:"date"`
	Idea string `json:"idea"`
	Type string `json:"type"`
}

// Result is the full idea generation output.
type Result struct {
	ContentType     string          `json:"content_type"`
	ContentTypeName string          `json:"content_type_name"`
	IdeaCount       int             `json:"idea_count"`
	Ideas           []Idea          `json:"ideas"`
	Calendar        []CalendarEntry `json:"calendar"`
}
